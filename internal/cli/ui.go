package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dr-livesey/treemat/pkg/matrix"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCellSet   = lipgloss.NewStyle().Foreground(colorGreen)
	styleCellUnset = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Matrix Table
// =============================================================================

// renderMatrixTable renders an incidence matrix as a terminal table: edge
// labels as column headings, one row per vertex occurrence, set cells as
// green ✓ and unset cells dimmed.
func renderMatrixTable(m *matrix.Matrix, vertices []uint8) string {
	if len(m.Header) == 0 {
		return StyleDim.Render("(no edges)")
	}

	widths := make([]int, len(m.Header))
	for i, label := range m.Header {
		widths[i] = len(label)
	}

	var b strings.Builder

	// Heading row; the leading column holds the vertex values.
	b.WriteString(strings.Repeat(" ", 5))
	for i, label := range m.Header {
		b.WriteString(StyleTitle.Render(pad(label, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	for i, row := range m.Rows {
		b.WriteString(StyleValue.Render(pad(fmt.Sprintf("%d", vertices[i]), 3)))
		b.WriteString("  ")
		for j, set := range row {
			cell := iconError
			style := styleCellUnset
			if set {
				cell = iconSuccess
				style = styleCellSet
			}
			b.WriteString(style.Render(pad(cell, widths[j])))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

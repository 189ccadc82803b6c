// Package cli implements the treemat command-line interface.
//
// Commands cover the full tree pipeline: convert between document formats
// (including the incidence-matrix dump), print matrices and diagnostic
// tree forms, render Graphviz artifacts, serve the HTTP API, and manage
// stored trees and the artifact cache. All commands support --verbose for
// debug-level logging via charmbracelet/log.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dr-livesey/treemat/pkg/buildinfo"
	"github.com/dr-livesey/treemat/pkg/cache"
	"github.com/dr-livesey/treemat/pkg/codec"
	"github.com/dr-livesey/treemat/pkg/matrix"
	"github.com/dr-livesey/treemat/pkg/tree"
)

// appName is the application name used for directories and display.
const appName = "treemat"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *codec.Registry
}

// New creates a CLI instance with a default logger and a codec registry
// carrying the built-in document formats plus the "matrix" encoder.
func New(w io.Writer, level log.Level) *CLI {
	registry := codec.NewRegistry()
	registry.RegisterEncoder("matrix", matrix.Encoder{})

	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Registry: registry,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Treemat converts trees between formats and derives incidence matrices",
		Long:         `Treemat is a CLI for working with small rooted ordered trees: convert them between JSON, YAML and TOML, derive their edge incidence matrices, and render them with Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache creates the artifact cache for CLI use: a file cache under the
// user cache directory, or a null cache when disabled or unavailable.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache dir unavailable, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("file cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/treemat/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// readInput reads the input document from path, or stdin when path is
// empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to path, or stdout when path is empty or "-".
// A trailing newline is added on stdout if the data lacks one.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// decodeInput reads and decodes a tree document. When format is empty it
// is guessed from the path extension, defaulting to json.
func (c *CLI) decodeInput(path, format string) (*tree.Node, error) {
	if format == "" {
		format = formatFromPath(path)
	}
	decoder, err := c.Registry.Decoder(format)
	if err != nil {
		return nil, err
	}
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("decoding input", "format", format, "bytes", len(data))
	return decoder.Decode(data)
}

// formatFromPath guesses the document format from a file extension.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

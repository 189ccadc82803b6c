package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/dr-livesey/treemat/pkg/cache"
	"github.com/dr-livesey/treemat/pkg/codec"
	"github.com/dr-livesey/treemat/pkg/matrix"
)

const sampleJSON = `{"value":1,"nodes":[{"value":2,"nodes":[{"value":4,"nodes":[{"value":3,"nodes":[]},{"value":5,"nodes":[]}]}]}]}`

func newTestHandler() http.Handler {
	registry := codec.NewRegistry()
	registry.RegisterEncoder("matrix", matrix.Encoder{})
	return New(registry, cache.NewNullCache(), log.New(io.Discard))
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" {
		t.Error("response should carry an X-Request-ID header")
	}
}

func TestConvert_JSONToYAML(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/convert?from=json&to=yaml", "application/json", strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("POST /v1/convert error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)

	// The YAML output must decode back to the same tree.
	back, err := codec.YAML{}.Decode(body)
	if err != nil {
		t.Fatalf("decode converted output: %v", err)
	}
	orig, _ := codec.JSON{}.Decode([]byte(sampleJSON))
	if !back.Equal(orig) {
		t.Error("conversion changed the tree")
	}
}

func TestConvert_ToMatrixDump(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/convert?to=matrix", "application/json", strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("POST /v1/convert error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(body), "IncidenceMatrix {") {
		t.Errorf("body should be the matrix dump, got %q", body)
	}
}

func TestConvert_MalformedDocument(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/convert?to=yaml", "application/json", strings.NewReader(`{"nodes":[]}`))
	if err != nil {
		t.Fatalf("POST /v1/convert error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error == "" {
		t.Error("error envelope should carry a message")
	}
}

func TestConvert_UnknownFormat(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/convert?to=msgpack", "application/json", strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("POST /v1/convert error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestMatrix(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/matrix", "application/json", strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("POST /v1/matrix error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	wantHeader := []string{"1-2", "2-4", "4-3", "4-5"}
	if len(body.Header) != len(wantHeader) {
		t.Fatalf("len(header) = %d, want %d", len(body.Header), len(wantHeader))
	}
	for i := range wantHeader {
		if body.Header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, body.Header[i], wantHeader[i])
		}
	}
	if len(body.Rows) != 5 {
		t.Errorf("len(rows) = %d, want 5", len(body.Rows))
	}
}

func TestRender_DOT(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/render?format=dot", "application/json", strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("POST /v1/render error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "digraph tree {") {
		t.Errorf("body should be a DOT document, got %q", body)
	}
}

func TestFormats(t *testing.T) {
	srv := httptest.NewServer(newTestHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/formats")
	if err != nil {
		t.Fatalf("GET /v1/formats error: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Formats []string `json:"formats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"json", "matrix", "toml", "yaml"}
	if len(body.Formats) != len(want) {
		t.Fatalf("formats = %v, want %v", body.Formats, want)
	}
	for i := range want {
		if body.Formats[i] != want[i] {
			t.Errorf("formats[%d] = %q, want %q", i, body.Formats[i], want[i])
		}
	}
}

// Package api exposes tree conversion and matrix derivation over HTTP.
//
// Routes:
//
//	POST /v1/convert?from=json&to=yaml  - re-encode a tree document
//	POST /v1/matrix?from=json           - derive the incidence matrix
//	POST /v1/render?format=svg          - render the tree with Graphviz
//	GET  /v1/formats                    - list registered formats
//	GET  /healthz                       - liveness probe
//
// Malformed documents map to 400 with a JSON error envelope; everything
// else that fails maps to 500. Each response carries an X-Request-ID.
package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/dr-livesey/treemat/pkg/cache"
	"github.com/dr-livesey/treemat/pkg/codec"
	"github.com/dr-livesey/treemat/pkg/matrix"
	"github.com/dr-livesey/treemat/pkg/render"
	"github.com/dr-livesey/treemat/pkg/tree"
)

// maxBodySize caps request bodies; tree documents are small.
const maxBodySize = 1 << 20

// artifactTTL is how long rendered artifacts stay cached. Keys embed the
// DOT content hash, so entries can never go stale, only cold.
const artifactTTL = 7 * 24 * time.Hour

// Handler holds the HTTP handler dependencies.
type Handler struct {
	registry  *codec.Registry
	artifacts cache.Cache
	logger    *log.Logger
}

// New creates the HTTP handler with all routes registered. The registry
// decides which formats convert accepts; the matrix dump joins it under
// the name "matrix" so the write path stays uniform. Rendered artifacts
// are cached in artifacts, keyed by DOT content hash.
func New(registry *codec.Registry, artifacts cache.Cache, logger *log.Logger) http.Handler {
	h := &Handler{registry: registry, artifacts: artifacts, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.logRequests)

	r.Get("/healthz", h.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", h.convert)
		r.Post("/matrix", h.matrix)
		r.Post("/render", h.render)
		r.Get("/formats", h.formats)
	})

	return r
}

// GET /healthz - liveness probe.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /v1/formats - names of all registered output formats.
func (h *Handler) formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": h.registry.Formats()})
}

// POST /v1/convert - decode the body with the "from" codec, re-encode it
// with the "to" encoder and return the result verbatim.
func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	root, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	to := formatParam(r, "to")
	encoder, err := h.registry.Encoder(to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := encoder.Encode(root)
	if err != nil {
		h.logger.Error("encode failed", "format", to, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType(to))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// POST /v1/matrix - derive the incidence matrix of the posted tree.
func (h *Handler) matrix(w http.ResponseWriter, r *http.Request) {
	root, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	m := matrix.Build(root)
	writeJSON(w, http.StatusOK, matrixResponse{Header: m.Header, Rows: m.Rows})
}

// POST /v1/render - render the posted tree with Graphviz. The format
// query parameter selects svg (default), png or dot.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	root, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	dot := render.ToDOT(root)

	if format == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(dot))
		return
	}

	ctx := r.Context()
	key := cache.Key("render:"+format, []byte(dot))
	if data, hit, err := h.artifacts.Get(ctx, key); err == nil && hit {
		h.logger.Debug("render cache hit", "key", key)
		writeArtifact(w, format, data)
		return
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = render.SVG(ctx, dot)
	case "png":
		data, err = render.PNG(ctx, dot)
	default:
		writeError(w, http.StatusBadRequest, "unknown render format "+format)
		return
	}
	if err != nil {
		h.logger.Error("render failed", "format", format, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.artifacts.Set(ctx, key, data, artifactTTL); err != nil {
		h.logger.Debug("cache store failed", "err", err)
	}
	writeArtifact(w, format, data)
}

// writeArtifact writes rendered bytes with the right content type.
func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	case "png":
		w.Header().Set("Content-Type", "image/png")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeBody reads the request body and decodes it with the "from" codec.
// On failure it writes the error response and returns ok=false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request) (*tree.Node, bool) {
	from := formatParam(r, "from")
	decoder, err := h.registry.Decoder(from)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return nil, false
	}

	node, err := decoder.Decode(body)
	if err != nil {
		var ferr *codec.FormatError
		if errors.As(err, &ferr) {
			writeError(w, http.StatusBadRequest, ferr.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return node, true
}

// formatParam reads a format query parameter, defaulting to "json".
func formatParam(r *http.Request, name string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return "json"
}

// contentType maps a format name to a response content type.
func contentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "toml":
		return "application/toml"
	default:
		return "text/plain; charset=utf-8"
	}
}

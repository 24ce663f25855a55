package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dotwalk/pkg/buildinfo"
	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/graph"
	"github.com/matzehuels/dotwalk/pkg/objfile"
	"github.com/matzehuels/dotwalk/pkg/render"
)

var contentTypes = map[string]string{
	render.FormatSVG:  "image/svg+xml",
	render.FormatPNG:  "image/png",
	render.FormatPDF:  "application/pdf",
	render.FormatJPG:  "image/jpeg",
	render.FormatGIF:  "image/gif",
	render.FormatPS:   "application/postscript",
	render.FormatJSON: "application/json",
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

// dot discovers the posted document and responds with its DOT text.
func (s *Server) dot(w http.ResponseWriter, r *http.Request) {
	g, ok := s.buildGraph(w, r)
	if !ok {
		return
	}
	data, err := s.runner.Marshal(r.Context(), g)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write(data)
}

// graphJSON discovers the posted document and responds with the graph as JSON,
// without serializing it to DOT.
func (s *Server) graphJSON(w http.ResponseWriter, r *http.Request) {
	g, ok := s.buildGraph(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := graph.WriteJSON(g, &buf); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// render discovers the posted document, renders it through the runner's
// renderer and streams the result back.
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := render.ValidateFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}
	g, ok := s.buildGraph(w, r)
	if !ok {
		return
	}

	dir, err := os.MkdirTemp("", "dotwalk-*")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "graph."+format)
	if err := s.runner.RenderFile(r.Context(), g, out, format, nil); err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := os.ReadFile(out)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ct, ok := contentTypes[format]
	if !ok {
		ct = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Write(data)
}

func (s *Server) buildGraph(w http.ResponseWriter, r *http.Request) (*graph.Graph, bool) {
	doc, err := objfile.Load(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	g, err := s.runner.Build(r.Context(), doc.Root, doc.Attrs)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return g, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: RequestID(r.Context()),
	})
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeUnknownAttribute, errors.ErrCodeTypeMismatch,
		errors.ErrCodeDuplicateID, errors.ErrCodeNoIdentity, errors.ErrCodeProtocol:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeRendererNotFound, errors.ErrCodeUnsupportedPlatform:
		return http.StatusServiceUnavailable
	case errors.ErrCodeRenderFailed:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

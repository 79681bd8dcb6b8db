package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/buildinfo"
	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/manifest"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
	"github.com/matzehuels/graphwiz/pkg/render/layout"
)

// FormatDOT requests the DOT text itself instead of a Graphviz image.
const FormatDOT = "dot"

const dotContentType = "text/vnd.graphviz; charset=utf-8"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleAttributes(w http.ResponseWriter, r *http.Request) {
	names := attrs.Match(r.URL.Query().Get("match"))
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"attributes": names})
}

// handleRender builds the posted manifest and returns it as DOT or as an
// image laid out by Graphviz.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = FormatDOT
	}
	var imageFormat layout.Format
	if format != FormatDOT {
		f, err := layout.ParseFormat(format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		imageFormat = f
	}
	engine, err := layout.ParseEngine(q.Get("engine"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	responsive, err := boolParam(q.Get("responsive"), "responsive")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	mf, err := manifest.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.fail(w, r, errors.New(errors.ErrCodeTooLarge, "manifest exceeds %d bytes", s.maxBody))
			return
		}
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	m, built, err := manifest.Load(ctx, "request "+RequestID(ctx), bytes.NewReader(body), mf)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts, err := s.dotOptions(m, q.Get("directed"), q.Get("strict"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	text := dot.Render(built.Graph, opts)

	if format == FormatDOT {
		w.Header().Set("Content-Type", dotContentType)
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, text)
		return
	}

	layoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	data, err := layout.Render(layoutCtx, text, layout.Options{
		Format:     imageFormat,
		Engine:     engine,
		Responsive: responsive,
		Cache:      s.cache,
		Keyer:      s.keyer,
		TTL:        s.ttl,
	})
	if err != nil {
		if stderrors.Is(layoutCtx.Err(), context.DeadlineExceeded) {
			err = errors.Wrap(errors.ErrCodeTimeout, err, "layout exceeded %s", s.timeout)
		}
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", imageFormat.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) dotOptions(m *manifest.Manifest, directed, strict string) (dot.Options, error) {
	opts := m.RenderOptions(s.defaults)
	if directed != "" {
		v, err := boolParam(directed, "directed")
		if err != nil {
			return opts, err
		}
		opts.Directed = v
	}
	if strict != "" {
		v, err := boolParam(strict, "strict")
		if err != nil {
			return opts, err
		}
		opts.Strict = v
	}
	return opts, nil
}

func boolParam(value, name string) (bool, error) {
	if value == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s: want true or false, got %q", name, value)
	}
	return v, nil
}

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := err.Error()
	if code == errors.ErrCodeInternal {
		msg = "internal error"
	}
	writeJSON(w, StatusFor(err), errorBody{Error: errorDetail{
		Code:      code,
		Message:   msg,
		RequestID: RequestID(r.Context()),
	}})
}

// StatusFor maps an error to the HTTP status the server answers with.
func StatusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errors.ErrCodeTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

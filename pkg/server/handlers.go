package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/qrgen/pkg/cache"
	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/pipeline"
	"github.com/matzehuels/qrgen/pkg/qr"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseOptions(chi.URLParam(r, "format"), r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	etag := fmt.Sprintf(`"%s"`, cache.Hash(result.Data)[:32])
	h := w.Header()
	h.Set("ETag", etag)
	if s.defaults.MaxAge > 0 {
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.defaults.MaxAge.Seconds())))
	}
	if result.Cached {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	if etagMatch(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", result.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

// etagMatch reports whether an If-None-Match header value matches etag.
// The header may be "*" or a comma-separated list; tags are compared weakly,
// ignoring any W/ prefix.
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	etag = strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}

// parseOptions merges query parameters over the server defaults.
func (s *Server) parseOptions(format string, q url.Values) (pipeline.Options, error) {
	opts := s.defaults.Options
	opts.Format = format
	opts.Text = q.Get("text")
	if opts.Text == "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "query parameter %q is required", "text")
	}

	var err error
	if v := q.Get("scale"); v != "" {
		if opts.Params.Scale, err = strconv.Atoi(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidParams, "scale must be an integer, got %q", v)
		}
	}
	if v := q.Get("border"); v != "" {
		if opts.Params.Border, err = strconv.Atoi(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidParams, "border must be an integer, got %q", v)
		}
	}
	if v := q.Get("level"); v != "" {
		if opts.Level, err = qr.ParseLevel(v); err != nil {
			return opts, err
		}
	}
	if v := q.Get("merge"); v != "" {
		if opts.MergeRuns, err = strconv.ParseBool(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidParams, "merge must be a boolean, got %q", v)
		}
	}
	if v := q.Get("invert"); v != "" {
		if opts.Invert, err = strconv.ParseBool(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidParams, "invert must be a boolean, got %q", v)
		}
	}
	return opts, nil
}

type errorResponse struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsClientError(err) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("render failed", "error", err)
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: code, Message: errors.UserMessage(err)})
}

// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
)

const maxFormBytes = 1 << 20

type Handlers struct {
	Q *app.QueryService
	I *app.IngestionService
}

// allowed lists the methods served per path, for 405 responses.
var allowed = map[string]string{
	"/":        "GET, POST",
	"/healthz": "GET",
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Get("/", h.listReviews)
	s.mux.Post("/", h.createReview)
	s.mux.MethodNotAllowed(methodNotAllowed)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, err := json.Marshal(errorBody{Error: msg})
	if err != nil {
		log.Error().Err(err).Msg("marshal error body failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

// writeFailure maps err onto 400 for caller-correctable errors and 500 otherwise.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsClientError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Error().Err(err).Str("err_type", observability.LabelErr(err)).
		Str("method", r.Method).Msg("request failed")
	writeError(w, http.StatusInternalServerError, err.Error())
}

// writeJSON sends an already-marshalled body with an explicit Content-Length.
func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func marshalBody(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

// calcETag hashes an already-marshalled body into a weak ETag.
func calcETag(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

// first returns the first non-blank value for key. Blank values count as absent.
func first(v url.Values, key string) string {
	for _, s := range v[key] {
		if s != "" {
			return s
		}
	}
	return ""
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	q, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed query string: %v", err))
		return
	}
	f := domain.ReviewFilter{
		Location:  first(q, "location"),
		StartDate: first(q, "start_date"),
		EndDate:   first(q, "end_date"),
	}

	out, err := h.Q.ListReviews(r.Context(), f)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if out == nil {
		out = []domain.Review{}
	}

	body, err := marshalBody(out)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	etag := calcETag(body)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, body)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFormBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeFailure(w, r, fmt.Errorf("read request body: %w", err))
		return
	}
	form, err := url.ParseQuery(string(raw))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed form body: %v", err))
		return
	}

	rev, err := h.I.Submit(r.Context(), domain.NewReview{
		Location:   first(form, "Location"),
		ReviewBody: first(form, "ReviewBody"),
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	body, err := marshalBody(rev)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, body)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if a, ok := allowed[r.URL.Path]; ok {
		w.Header().Set("Allow", a)
	}
	writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
}

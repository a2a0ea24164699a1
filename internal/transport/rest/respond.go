package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func toPage[S, T any](p *domain.Page[S], conv func(S) T) pageResponse[T] {
	return pageResponse[T]{
		Items:  mapSlice(p.Items, conv),
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}

func mapSlice[S, T any](in []S, conv func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, conv(v))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognised
// is logged and reported as 500 without leaking details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrStaleVersion):
		writeError(w, http.StatusConflict, "stale version")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a single JSON object from the request body, rejecting
// unknown fields and oversized bodies.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be empty.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

type statusRequest struct {
	Status *string `json:"status"`
}

// parseOptionalStatus returns nil for an absent status.
func parseOptionalStatus(raw *string) (*domain.EditorialStatus, error) {
	if raw == nil {
		return nil, nil
	}
	st, err := domain.ParseEditorialStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// pageFromQuery reads limit and offset; defaults and clamping are applied by
// PageRequest.Normalize.
func pageFromQuery(r *http.Request) (domain.PageRequest, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.PageRequest{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.PageRequest{Limit: limit, Offset: offset}.Normalize(), nil
}

func contentFilterFromQuery(r *http.Request) (domain.ContentFilter, error) {
	q := r.URL.Query()
	f := domain.ContentFilter{Language: q.Get("language")}
	if raw := q.Get("status"); raw != "" {
		st, err := domain.ParseEditorialStatus(raw)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	return f, nil
}

func windowFromQuery(r *http.Request) (domain.TimeWindow, error) {
	var w domain.TimeWindow
	var errs []domain.FieldError
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{{"from", &w.From}, {"to", &w.To}} {
		raw := r.URL.Query().Get(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: fmt.Sprintf("must be RFC 3339 (got %q)", raw)})
			continue
		}
		*p.dst = t.UTC()
	}
	if len(errs) > 0 {
		return w, domain.NewValidationErrors(errs)
	}
	return w, nil
}

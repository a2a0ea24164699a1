package domain

import "time"

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// PageRequest is offset-based pagination input.
type PageRequest struct {
	Limit  int
	Offset int
}

// Normalize applies the default limit and clamps out-of-range values.
func (p PageRequest) Normalize() PageRequest {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Page is one slice of a larger ordered result.
type Page[T any] struct {
	Items  []T
	Total  int
	Limit  int
	Offset int
}

// TimeWindow is an inclusive [From, To] range in UTC.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// Validate requires both bounds and From <= To.
func (w TimeWindow) Validate() error {
	var errs []FieldError
	if w.From.IsZero() {
		errs = append(errs, FieldError{Field: "from", Message: "required"})
	}
	if w.To.IsZero() {
		errs = append(errs, FieldError{Field: "to", Message: "required"})
	}
	if len(errs) == 0 && w.To.Before(w.From) {
		errs = append(errs, FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ContentFilter narrows admin listings of status-bearing content.
// An empty Language matches every language; a nil Status matches every status.
type ContentFilter struct {
	Language string
	Status   *EditorialStatus
}

// NewPage wraps one slice of results with the request that produced it.
func NewPage[T any](items []T, total int, req PageRequest) *Page[T] {
	return &Page[T]{Items: items, Total: total, Limit: req.Limit, Offset: req.Offset}
}

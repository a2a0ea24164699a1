package link

import "github.com/heartmarshall/bhashamitra-backend/internal/domain"

// CreateInput holds the parameters for linking a lemma to a sentence.
// SurfaceFormID is stored as given and never validated.
type CreateInput struct {
	LemmaID       string
	SentenceID    string
	SurfaceFormID *string
	LinkType      string // blank = EXACT
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.LemmaID) {
		errs = append(errs, domain.FieldError{Field: "lemma_id", Message: "required"})
	}
	if domain.IsBlank(i.SentenceID) {
		errs = append(errs, domain.FieldError{Field: "sentence_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput changes the surface form reference or the link type.
// The lemma and sentence of a link are fixed.
type UpdateInput struct {
	ID              string
	SurfaceFormID   *string // ptr("") clears
	LinkType        *string // ptr("") resets to EXACT
	ExpectedVersion *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	if domain.IsBlank(i.ID) {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

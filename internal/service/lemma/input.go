package lemma

import (
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// CreateInput holds the parameters for creating a lemma.
type CreateInput struct {
	Language     string
	LemmaNative  string
	LemmaLatin   *string
	PartOfSpeech *string
	Notes        *string
	Status       *domain.EditorialStatus // nil = DRAFT
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if domain.IsBlank(i.LemmaNative) {
		errs = append(errs, domain.FieldError{Field: "lemma_native", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial lemma update. nil fields are left unchanged.
// Status changes go through SetStatus.
type UpdateInput struct {
	ID              string
	Language        *string
	LemmaNative     *string
	LemmaLatin      *string // ptr("") clears
	PartOfSpeech    *string // ptr("") clears
	Notes           *string
	ExpectedVersion *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Language != nil && domain.IsBlank(*i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must not be blank"})
	}
	if i.LemmaNative != nil && domain.IsBlank(*i.LemmaNative) {
		errs = append(errs, domain.FieldError{Field: "lemma_native", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

package sentence

import (
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// CreateInput holds the parameters for creating a usage sentence.
type CreateInput struct {
	Language       string
	SentenceNative string
	SentenceLatin  *string
	Translation    *string
	Register       *string // nil or blank = "neutral"
	Explanation    *string
	Difficulty     *int
	Status         *domain.EditorialStatus // nil = DRAFT
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if domain.IsBlank(i.SentenceNative) {
		errs = append(errs, domain.FieldError{Field: "sentence_native", Message: "required"})
	}
	if i.Difficulty != nil && *i.Difficulty < 0 {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must not be negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial sentence update. nil fields are left unchanged.
type UpdateInput struct {
	ID              string
	Language        *string
	SentenceNative  *string
	SentenceLatin   *string
	Translation     *string
	Register        *string
	Explanation     *string
	Difficulty      *int
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
	if i.SentenceNative != nil && domain.IsBlank(*i.SentenceNative) {
		errs = append(errs, domain.FieldError{Field: "sentence_native", Message: "must not be blank"})
	}
	if i.Difficulty != nil && *i.Difficulty < 0 {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

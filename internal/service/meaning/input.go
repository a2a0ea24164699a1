package meaning

import (
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// CreateInput holds the parameters for adding a meaning to a lemma.
type CreateInput struct {
	LemmaID         string
	MeaningLanguage string
	MeaningText     string
	Priority        *int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.LemmaID) {
		errs = append(errs, domain.FieldError{Field: "lemma_id", Message: "required"})
	}
	if domain.IsBlank(i.MeaningLanguage) {
		errs = append(errs, domain.FieldError{Field: "meaning_language", Message: "required"})
	}
	if domain.IsBlank(i.MeaningText) {
		errs = append(errs, domain.FieldError{Field: "meaning_text", Message: "required"})
	}
	if i.Priority == nil {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial meaning update. The owning lemma cannot change.
type UpdateInput struct {
	ID              string
	MeaningLanguage *string
	MeaningText     *string
	Priority        *int
	ExpectedVersion *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.MeaningLanguage != nil && domain.IsBlank(*i.MeaningLanguage) {
		errs = append(errs, domain.FieldError{Field: "meaning_language", Message: "must not be blank"})
	}
	if i.MeaningText != nil && domain.IsBlank(*i.MeaningText) {
		errs = append(errs, domain.FieldError{Field: "meaning_text", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func normalizeLanguage(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

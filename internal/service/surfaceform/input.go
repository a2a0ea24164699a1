package surfaceform

import "github.com/heartmarshall/bhashamitra-backend/internal/domain"

// CreateInput holds the parameters for adding a surface form.
type CreateInput struct {
	LemmaID    string
	FormNative string
	FormLatin  *string
	FormType   *string
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.LemmaID) {
		errs = append(errs, domain.FieldError{Field: "lemma_id", Message: "required"})
	}
	if domain.IsBlank(i.FormNative) {
		errs = append(errs, domain.FieldError{Field: "form_native", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial surface form update.
type UpdateInput struct {
	ID              string
	FormNative      *string
	FormLatin       *string
	FormType        *string
	Notes           *string
	ExpectedVersion *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.FormNative != nil && domain.IsBlank(*i.FormNative) {
		errs = append(errs, domain.FieldError{Field: "form_native", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

package language

import (
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// CreateInput holds the parameters for registering a language.
type CreateInput struct {
	Code                  string
	Name                  string
	Script                string
	TransliterationScheme *string
	Enabled               bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.Code)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(code) > MaxCodeLength {
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 10 characters"})
	}
	if domain.IsBlank(i.Name) {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if domain.IsBlank(i.Script) {
		errs = append(errs, domain.FieldError{Field: "script", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial language update. nil fields are left unchanged.
type UpdateInput struct {
	Code                  string
	Name                  *string
	Script                *string
	TransliterationScheme *string // ptr("") clears
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.Code) {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if i.Name == nil && i.Script == nil && i.TransliterationScheme == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && domain.IsBlank(*i.Name) {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
	}
	if i.Script != nil && domain.IsBlank(*i.Script) {
		errs = append(errs, domain.FieldError{Field: "script", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

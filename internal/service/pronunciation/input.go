package pronunciation

import "github.com/heartmarshall/bhashamitra-backend/internal/domain"

// CreateInput holds the parameters for attaching a recording to an owner.
type CreateInput struct {
	OwnerType  string
	OwnerID    string
	Speaker    *string
	Region     *string
	AudioURI   string
	DurationMs *int
}

// Validate checks the fields that do not depend on the owner type.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.OwnerID) {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if domain.IsBlank(i.AudioURI) {
		errs = append(errs, domain.FieldError{Field: "audio_uri", Message: "required"})
	}
	if i.DurationMs != nil && *i.DurationMs < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update. The owner of a recording is fixed.
type UpdateInput struct {
	ID              string
	Speaker         *string
	Region          *string
	AudioURI        *string
	DurationMs      *int
	ExpectedVersion *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if domain.IsBlank(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.AudioURI != nil && domain.IsBlank(*i.AudioURI) {
		errs = append(errs, domain.FieldError{Field: "audio_uri", Message: "must not be blank"})
	}
	if i.DurationMs != nil && *i.DurationMs < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

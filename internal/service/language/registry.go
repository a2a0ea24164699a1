package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// IsEnabled reports whether code names an enabled language. It never fails:
// blank and unknown codes are false, and storage errors are logged and
// reported as false.
func (s *Service) IsEnabled(ctx context.Context, code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	lang, err := s.langs.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "language lookup failed",
				slog.String("code", code),
				slog.String("error", err.Error()),
			)
		}
		return false
	}
	return lang.Enabled
}

// RequireEnabled is the content gate: it fails with a validation error when
// code is blank, unknown or disabled.
func (s *Service) RequireEnabled(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.NewValidationError("language", "language required")
	}
	lang, err := s.langs.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("language", "language is not enabled or not found")
		}
		return fmt.Errorf("get language: %w", err)
	}
	if !lang.Enabled {
		return domain.NewValidationError("language", "language is not enabled or not found")
	}
	return nil
}

// GetEnabled returns an enabled language. Disabled and unknown codes are both ErrNotFound.
func (s *Service) GetEnabled(ctx context.Context, code string) (*domain.Language, error) {
	lang, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !lang.Enabled {
		return nil, fmt.Errorf("language %s: %w", lang.Code, domain.ErrNotFound)
	}
	return lang, nil
}

// GetByCode returns a language regardless of its enabled flag.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}
	lang, err := s.langs.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// ListAll returns every language ordered by code.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Language, error) {
	langs, err := s.langs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

// ListEnabled returns enabled languages ordered by code.
func (s *Service) ListEnabled(ctx context.Context) ([]*domain.Language, error) {
	langs, err := s.langs.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled languages: %w", err)
	}
	return langs, nil
}

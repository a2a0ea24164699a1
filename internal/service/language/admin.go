package language

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create registers a new language. Codes are unique.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang := &domain.Language{
		Code:                  strings.TrimSpace(input.Code),
		Name:                  strings.TrimSpace(input.Name),
		Script:                strings.TrimSpace(input.Script),
		TransliterationScheme: domain.TrimToNil(input.TransliterationScheme),
		Enabled:               input.Enabled,
	}

	var created *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.langs.ExistsByCode(txCtx, lang.Code)
		if err != nil {
			return fmt.Errorf("check language code: %w", err)
		}
		if exists {
			return domain.NewConflictError(domain.EntityTypeLanguage, "code", lang.Code)
		}

		created, err = s.langs.Create(txCtx, actor, lang)
		if err != nil {
			return fmt.Errorf("create language: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLanguage,
			EntityID:   created.ID,
			EventType:  domain.EntityTypeLanguage.Event(domain.ActionCreated),
			Actor:      actor,
			Details:    snapshotOf(created),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "language created",
		slog.String("code", created.Code),
		slog.String("actor", actor),
	)
	return created, nil
}

// Update applies a partial update to a language.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.langs.GetByCode(txCtx, strings.TrimSpace(input.Code))
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}
		before := snapshotOf(current)

		next := *current
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Script != nil {
			next.Script = strings.TrimSpace(*input.Script)
		}
		if input.TransliterationScheme != nil {
			next.TransliterationScheme = domain.TrimToNil(input.TransliterationScheme)
		}

		updated, err = s.langs.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update language: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLanguage,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeLanguage.Event(domain.ActionUpdated),
			Actor:      actor,
			Details:    map[string]any{"before": before, "after": snapshotOf(updated)},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "language updated", slog.String("code", updated.Code))
	return updated, nil
}

// SetEnabled turns content creation for a language on or off.
// Setting the current value is a no-op and is not audited.
func (s *Service) SetEnabled(ctx context.Context, actor, code string, enabled bool) (*domain.Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	var result *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.langs.GetByCode(txCtx, code)
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}
		if current.Enabled == enabled {
			result = current
			return nil
		}

		next := *current
		next.Enabled = enabled
		result, err = s.langs.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update language: %w", err)
		}

		action := domain.ActionDisabled
		if enabled {
			action = domain.ActionEnabled
		}
		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLanguage,
			EntityID:   result.ID,
			EventType:  domain.EntityTypeLanguage.Event(action),
			Actor:      actor,
			Details:    map[string]any{"code": result.Code, "enabled": enabled},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "language availability changed",
		slog.String("code", code),
		slog.Bool("enabled", enabled),
		slog.String("actor", actor),
	)
	return result, nil
}

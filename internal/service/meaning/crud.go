package meaning

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create adds a meaning to an existing lemma whose language is enabled.
// (lemma, meaning_language, priority) is unique.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.Meaning, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meaning := &domain.Meaning{
		LemmaID:         strings.TrimSpace(input.LemmaID),
		MeaningLanguage: normalizeLanguage(input.MeaningLanguage),
		MeaningText:     strings.TrimSpace(input.MeaningText),
		Priority:        *input.Priority,
	}

	var created *domain.Meaning
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireLemmaLanguage(txCtx, meaning.LemmaID); err != nil {
			return err
		}

		exists, err := s.meanings.ExistsByKey(txCtx, meaning.LemmaID, meaning.MeaningLanguage, meaning.Priority, "")
		if err != nil {
			return fmt.Errorf("check meaning uniqueness: %w", err)
		}
		if exists {
			return conflict(meaning.LemmaID, meaning.MeaningLanguage, meaning.Priority)
		}

		created, err = s.meanings.Create(txCtx, actor, meaning)
		if err != nil {
			return fmt.Errorf("create meaning: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeMeaning,
			EntityID:   created.ID,
			EventType:  domain.EntityTypeMeaning.Event(domain.ActionCreated),
			Actor:      actor,
			Details:    keyDetails(created),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "meaning created",
		slog.String("meaning_id", created.ID),
		slog.String("lemma_id", created.LemmaID),
	)
	return created, nil
}

// Update applies a partial update, re-checking uniqueness when the
// language or priority changes.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.Meaning, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Meaning
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.meanings.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get meaning: %w", err)
		}
		if err := domain.CheckVersion(input.ExpectedVersion, current.Auditable); err != nil {
			return err
		}
		if err := s.requireLemmaLanguage(txCtx, current.LemmaID); err != nil {
			return err
		}
		before := snapshotOf(current)

		next := *current
		if input.MeaningLanguage != nil {
			next.MeaningLanguage = normalizeLanguage(*input.MeaningLanguage)
		}
		if input.MeaningText != nil {
			next.MeaningText = strings.TrimSpace(*input.MeaningText)
		}
		if input.Priority != nil {
			next.Priority = *input.Priority
		}

		if next.MeaningLanguage != current.MeaningLanguage || next.Priority != current.Priority {
			exists, err := s.meanings.ExistsByKey(txCtx, next.LemmaID, next.MeaningLanguage, next.Priority, current.ID)
			if err != nil {
				return fmt.Errorf("check meaning uniqueness: %w", err)
			}
			if exists {
				return conflict(next.LemmaID, next.MeaningLanguage, next.Priority)
			}
		}

		updated, err = s.meanings.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update meaning: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeMeaning,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeMeaning.Event(domain.ActionUpdated),
			Actor:      actor,
			Details: map[string]any{
				"lemmaId": updated.LemmaID,
				"before":  before,
				"after":   snapshotOf(updated),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "meaning updated", slog.String("meaning_id", updated.ID))
	return updated, nil
}

// Delete removes a meaning.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if domain.IsBlank(id) {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.meanings.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get meaning: %w", err)
		}
		if err := s.meanings.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete meaning: %w", err)
		}
		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeMeaning,
			EntityID:   id,
			EventType:  domain.EntityTypeMeaning.Event(domain.ActionDeleted),
			Actor:      actor,
			Details:    keyDetails(removed),
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "meaning deleted",
		slog.String("meaning_id", id),
		slog.String("actor", actor),
	)
	return nil
}

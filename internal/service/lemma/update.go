package lemma

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Update applies a partial update. The language gate is re-checked, and the
// uniqueness guard runs only when language or lemma_native changes.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.Lemma, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Lemma
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.lemmas.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get lemma: %w", err)
		}
		if err := domain.CheckVersion(input.ExpectedVersion, current.Auditable); err != nil {
			return err
		}
		before := snapshotOf(current)

		next := *current
		if input.Language != nil {
			next.Language = strings.TrimSpace(*input.Language)
		}
		if input.LemmaNative != nil {
			next.LemmaNative = domain.NormalizeNative(*input.LemmaNative)
		}
		if input.LemmaLatin != nil {
			next.LemmaLatin = domain.TrimToNil(input.LemmaLatin)
		}
		if input.PartOfSpeech != nil {
			next.PartOfSpeech = domain.TrimToNil(input.PartOfSpeech)
		}
		if input.Notes != nil {
			next.Notes = input.Notes
		}

		if err := s.languages.RequireEnabled(txCtx, next.Language); err != nil {
			return err
		}

		if next.Language != current.Language || next.LemmaNative != current.LemmaNative {
			exists, err := s.lemmas.ExistsByLanguageAndNative(txCtx, next.Language, next.LemmaNative, current.ID)
			if err != nil {
				return fmt.Errorf("check lemma uniqueness: %w", err)
			}
			if exists {
				return domain.NewConflictError(domain.EntityTypeLemma, "language", next.Language, "lemmaNative", next.LemmaNative)
			}
		}

		updated, err = s.lemmas.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update lemma: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemma,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeLemma.Event(domain.ActionUpdated),
			Actor:      actor,
			Details:    map[string]any{"before": before, "after": snapshotOf(updated)},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "lemma updated", slog.String("lemma_id", updated.ID))
	return updated, nil
}

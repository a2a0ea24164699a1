package sentence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Update applies a partial update. The target language must be enabled.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.UsageSentence, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.UsageSentence
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.sentences.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get sentence: %w", err)
		}
		if err := domain.CheckVersion(input.ExpectedVersion, current.Auditable); err != nil {
			return err
		}
		before := snapshotOf(current)

		next := *current
		if input.Language != nil {
			next.Language = strings.TrimSpace(*input.Language)
		}
		if input.SentenceNative != nil {
			next.SentenceNative = domain.NormalizeNative(*input.SentenceNative)
		}
		if input.SentenceLatin != nil {
			next.SentenceLatin = domain.TrimToNil(input.SentenceLatin)
		}
		if input.Translation != nil {
			next.Translation = domain.TrimToNil(input.Translation)
		}
		if input.Register != nil {
			next.Register = domain.NormalizeRegister(input.Register)
		}
		if input.Explanation != nil {
			next.Explanation = domain.TrimToNil(input.Explanation)
		}
		if input.Difficulty != nil {
			next.Difficulty = input.Difficulty
		}

		if err := s.languages.RequireEnabled(txCtx, next.Language); err != nil {
			return err
		}

		updated, err = s.sentences.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update sentence: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeUsageSentence,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeUsageSentence.Event(domain.ActionUpdated),
			Actor:      actor,
			Details:    map[string]any{"before": before, "after": snapshotOf(updated)},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "sentence updated", slog.String("sentence_id", updated.ID))
	return updated, nil
}

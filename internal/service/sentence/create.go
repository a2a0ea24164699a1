package sentence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create adds a usage sentence in an enabled language.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.UsageSentence, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	if input.Status != nil {
		status = *input.Status
	}
	sentence := &domain.UsageSentence{
		Language:       strings.TrimSpace(input.Language),
		SentenceNative: domain.NormalizeNative(input.SentenceNative),
		SentenceLatin:  domain.TrimToNil(input.SentenceLatin),
		Translation:    domain.TrimToNil(input.Translation),
		Register:       domain.NormalizeRegister(input.Register),
		Explanation:    domain.TrimToNil(input.Explanation),
		Difficulty:     input.Difficulty,
		Status:         status,
	}

	var created *domain.UsageSentence
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.languages.RequireEnabled(txCtx, sentence.Language); err != nil {
			return err
		}

		var err error
		created, err = s.sentences.Create(txCtx, actor, sentence)
		if err != nil {
			return fmt.Errorf("create sentence: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeUsageSentence,
			EntityID:   created.ID,
			EventType:  domain.EntityTypeUsageSentence.Event(domain.ActionCreated),
			Actor:      actor,
			Details:    summary(created),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "sentence created",
		slog.String("sentence_id", created.ID),
		slog.String("language", created.Language),
	)
	return created, nil
}

package lemma

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create adds a lemma in an enabled language. (language, lemma_native) is unique.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.Lemma, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	if input.Status != nil {
		status = *input.Status
	}
	lemma := &domain.Lemma{
		Language:     strings.TrimSpace(input.Language),
		LemmaNative:  domain.NormalizeNative(input.LemmaNative),
		LemmaLatin:   domain.TrimToNil(input.LemmaLatin),
		PartOfSpeech: domain.TrimToNil(input.PartOfSpeech),
		Notes:        input.Notes,
		Status:       status,
	}

	var created *domain.Lemma
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.languages.RequireEnabled(txCtx, lemma.Language); err != nil {
			return err
		}

		exists, err := s.lemmas.ExistsByLanguageAndNative(txCtx, lemma.Language, lemma.LemmaNative, "")
		if err != nil {
			return fmt.Errorf("check lemma uniqueness: %w", err)
		}
		if exists {
			return domain.NewConflictError(domain.EntityTypeLemma, "language", lemma.Language, "lemmaNative", lemma.LemmaNative)
		}

		created, err = s.lemmas.Create(txCtx, actor, lemma)
		if err != nil {
			return fmt.Errorf("create lemma: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemma,
			EntityID:   created.ID,
			EventType:  domain.EntityTypeLemma.Event(domain.ActionCreated),
			Actor:      actor,
			Details: map[string]any{
				"language":    created.Language,
				"lemmaNative": created.LemmaNative,
				"status":      created.Status,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "lemma created",
		slog.String("lemma_id", created.ID),
		slog.String("language", created.Language),
	)
	return created, nil
}

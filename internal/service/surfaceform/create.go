package surfaceform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create adds a surface form to a lemma whose language is enabled.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.SurfaceForm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	form := &domain.SurfaceForm{
		LemmaID:    strings.TrimSpace(input.LemmaID),
		FormNative: domain.NormalizeNative(input.FormNative),
		FormLatin:  domain.TrimToNil(input.FormLatin),
		FormType:   domain.TrimToNil(input.FormType),
		Notes:      input.Notes,
	}

	var created *domain.SurfaceForm
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lemma, err := s.lemmas.GetByID(txCtx, form.LemmaID)
		if err != nil {
			return fmt.Errorf("get lemma: %w", err)
		}
		if err := s.languages.RequireEnabled(txCtx, lemma.Language); err != nil {
			return err
		}

		exists, err := s.forms.ExistsByKey(txCtx, form.LemmaID, form.FormNative, "")
		if err != nil {
			return fmt.Errorf("check surface form uniqueness: %w", err)
		}
		if exists {
			return domain.NewConflictError(domain.EntityTypeSurfaceForm, "lemmaId", form.LemmaID, "formNative", form.FormNative)
		}

		created, err = s.forms.Create(txCtx, actor, form)
		if err != nil {
			return fmt.Errorf("create surface form: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeSurfaceForm,
			EntityID:   created.ID,
			EventType:  domain.EntityTypeSurfaceForm.Event(domain.ActionCreated),
			Actor:      actor,
			Details:    keyDetails(created),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "surface form created",
		slog.String("surface_form_id", created.ID),
		slog.String("lemma_id", created.LemmaID),
	)
	return created, nil
}

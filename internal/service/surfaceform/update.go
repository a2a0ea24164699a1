package surfaceform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Update applies a partial update while the lemma's language is enabled.
// Changing form_native re-checks uniqueness within the lemma.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.SurfaceForm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.SurfaceForm
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.forms.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get surface form: %w", err)
		}
		if err := domain.CheckVersion(input.ExpectedVersion, current.Auditable); err != nil {
			return err
		}
		lemma, err := s.lemmas.GetByID(txCtx, current.LemmaID)
		if err != nil {
			return fmt.Errorf("get lemma: %w", err)
		}
		if err := s.languages.RequireEnabled(txCtx, lemma.Language); err != nil {
			return err
		}
		before := snapshotOf(current)

		next := *current
		if input.FormNative != nil {
			next.FormNative = domain.NormalizeNative(*input.FormNative)
		}
		if input.FormLatin != nil {
			next.FormLatin = domain.TrimToNil(input.FormLatin)
		}
		if input.FormType != nil {
			next.FormType = domain.TrimToNil(input.FormType)
		}
		if input.Notes != nil {
			next.Notes = input.Notes
		}

		if next.FormNative != current.FormNative {
			exists, err := s.forms.ExistsByKey(txCtx, next.LemmaID, next.FormNative, current.ID)
			if err != nil {
				return fmt.Errorf("check surface form uniqueness: %w", err)
			}
			if exists {
				return domain.NewConflictError(domain.EntityTypeSurfaceForm, "lemmaId", next.LemmaID, "formNative", next.FormNative)
			}
		}

		updated, err = s.forms.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update surface form: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeSurfaceForm,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeSurfaceForm.Event(domain.ActionUpdated),
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

	s.log.DebugContext(ctx, "surface form updated", slog.String("surface_form_id", updated.ID))
	return updated, nil
}

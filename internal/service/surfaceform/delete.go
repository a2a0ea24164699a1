package surfaceform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Delete removes a surface form. Links that reference it keep the dangling id.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if domain.IsBlank(id) {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.forms.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get surface form: %w", err)
		}
		if err := s.forms.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete surface form: %w", err)
		}
		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeSurfaceForm,
			EntityID:   id,
			EventType:  domain.EntityTypeSurfaceForm.Event(domain.ActionDeleted),
			Actor:      actor,
			Details:    keyDetails(removed),
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "surface form deleted",
		slog.String("surface_form_id", id),
		slog.String("actor", actor),
	)
	return nil
}

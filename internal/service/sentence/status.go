package sentence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/workflow"
)

// SetStatus moves a sentence through the editorial workflow.
func (s *Service) SetStatus(ctx context.Context, actor, id string, status domain.EditorialStatus) (*domain.UsageSentence, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	var (
		updated *domain.UsageSentence
		from    domain.EditorialStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.sentences.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get sentence: %w", err)
		}
		from = current.Status

		if err := workflow.CheckTransition(from, status); err != nil {
			return err
		}

		next := *current
		next.Status = status
		updated, err = s.sentences.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update sentence status: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeUsageSentence,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeUsageSentence.Event(domain.ActionStatusChanged),
			Actor:      actor,
			Details:    workflow.StatusChange{From: from, To: updated.Status},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "sentence status changed",
		slog.String("sentence_id", id),
		slog.String("from", from.String()),
		slog.String("to", status.String()),
		slog.String("actor", actor),
	)
	return updated, nil
}

// Archive retires a sentence from public view.
func (s *Service) Archive(ctx context.Context, actor, id string) (*domain.UsageSentence, error) {
	return s.SetStatus(ctx, actor, id, domain.StatusArchived)
}

// Unarchive returns a sentence to target, REVIEW when target is nil.
func (s *Service) Unarchive(ctx context.Context, actor, id string, target *domain.EditorialStatus) (*domain.UsageSentence, error) {
	status, err := workflow.UnarchiveTarget(target)
	if err != nil {
		return nil, err
	}
	return s.SetStatus(ctx, actor, id, status)
}

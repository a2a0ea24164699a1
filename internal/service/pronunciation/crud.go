package pronunciation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create attaches a recording to a lemma or sentence in any status, as
// long as the owner's language is enabled.
// The same audio URI may be attached to one owner only once.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.Pronunciation, error) {
	ownerType, err := domain.ParseOwnerType(input.OwnerType)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Pronunciation{
		OwnerType:  ownerType,
		OwnerID:    strings.TrimSpace(input.OwnerID),
		Speaker:    domain.TrimToNil(input.Speaker),
		Region:     domain.TrimToNil(input.Region),
		AudioURI:   strings.TrimSpace(input.AudioURI),
		DurationMs: input.DurationMs,
	}

	var created *domain.Pronunciation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireWritableOwner(txCtx, p.OwnerType, p.OwnerID); err != nil {
			return err
		}

		exists, err := s.pronunciations.ExistsByKey(txCtx, p.OwnerType, p.OwnerID, p.AudioURI, "")
		if err != nil {
			return fmt.Errorf("check pronunciation uniqueness: %w", err)
		}
		if exists {
			return domain.NewConflictError(domain.EntityTypePronunciation,
				"ownerType", p.OwnerType, "ownerId", p.OwnerID, "audioUri", p.AudioURI)
		}

		created, err = s.pronunciations.Create(txCtx, actor, p)
		if err != nil {
			return fmt.Errorf("create pronunciation: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypePronunciation,
			EntityID:   created.ID,
			EventType:  domain.EntityTypePronunciation.Event(domain.ActionCreated),
			Actor:      actor,
			Details: map[string]any{
				"ownerType":  created.OwnerType,
				"ownerId":    created.OwnerID,
				"audioUri":   created.AudioURI,
				"speaker":    created.Speaker,
				"region":     created.Region,
				"durationMs": created.DurationMs,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "pronunciation created",
		slog.String("pronunciation_id", created.ID),
		slog.String("owner_type", created.OwnerType.String()),
		slog.String("owner_id", created.OwnerID),
	)
	return created, nil
}

// Update applies a partial update. Changing the audio URI re-runs the
// duplicate guard.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.Pronunciation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Pronunciation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.pronunciations.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get pronunciation: %w", err)
		}
		if err := domain.CheckVersion(input.ExpectedVersion, current.Auditable); err != nil {
			return err
		}
		if err := s.requireWritableOwner(txCtx, current.OwnerType, current.OwnerID); err != nil {
			return err
		}
		before := snapshotOf(current)

		next := *current
		if input.Speaker != nil {
			next.Speaker = domain.TrimToNil(input.Speaker)
		}
		if input.Region != nil {
			next.Region = domain.TrimToNil(input.Region)
		}
		if input.AudioURI != nil {
			next.AudioURI = strings.TrimSpace(*input.AudioURI)
		}
		if input.DurationMs != nil {
			next.DurationMs = input.DurationMs
		}

		if next.AudioURI != current.AudioURI {
			exists, err := s.pronunciations.ExistsByKey(txCtx, next.OwnerType, next.OwnerID, next.AudioURI, current.ID)
			if err != nil {
				return fmt.Errorf("check pronunciation uniqueness: %w", err)
			}
			if exists {
				return domain.NewConflictError(domain.EntityTypePronunciation,
					"ownerType", next.OwnerType, "ownerId", next.OwnerID, "audioUri", next.AudioURI)
			}
		}

		updated, err = s.pronunciations.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update pronunciation: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypePronunciation,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypePronunciation.Event(domain.ActionUpdated),
			Actor:      actor,
			Details: map[string]any{
				"ownerType": updated.OwnerType,
				"ownerId":   updated.OwnerID,
				"before":    before,
				"after":     snapshotOf(updated),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "pronunciation updated", slog.String("pronunciation_id", updated.ID))
	return updated, nil
}

// Delete removes a recording.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if domain.IsBlank(id) {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.pronunciations.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get pronunciation: %w", err)
		}
		if err := s.pronunciations.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete pronunciation: %w", err)
		}
		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypePronunciation,
			EntityID:   id,
			EventType:  domain.EntityTypePronunciation.Event(domain.ActionDeleted),
			Actor:      actor,
			Details: map[string]any{
				"ownerType": removed.OwnerType,
				"ownerId":   removed.OwnerID,
				"audioUri":  removed.AudioURI,
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "pronunciation deleted",
		slog.String("pronunciation_id", id),
		slog.String("actor", actor),
	)
	return nil
}

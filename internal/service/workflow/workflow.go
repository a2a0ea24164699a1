// Package workflow holds the editorial status state machine shared by lemmas
// and usage sentences.
package workflow

import (
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

const (
	reasonSkipReview = "must pass through REVIEW first"
	reasonArchived   = "must unarchive to REVIEW first"
)

// CheckTransition reports whether an entity may move from one status to
// another. Only two moves are forbidden: DRAFT to PUBLISHED and ARCHIVED to
// PUBLISHED. Same-state moves are allowed.
func CheckTransition(from, to domain.EditorialStatus) error {
	if to != domain.StatusPublished {
		return nil
	}
	switch from {
	case domain.StatusDraft:
		return &domain.TransitionError{From: from, To: to, Reason: reasonSkipReview}
	case domain.StatusArchived:
		return &domain.TransitionError{From: from, To: to, Reason: reasonArchived}
	}
	return nil
}

// UnarchiveTarget resolves the status an archived entity returns to.
// nil defaults to REVIEW; ARCHIVED is rejected.
func UnarchiveTarget(target *domain.EditorialStatus) (domain.EditorialStatus, error) {
	if target == nil {
		return domain.StatusReview, nil
	}
	if !target.IsValid() {
		return "", domain.NewValidationError("status", "unknown status")
	}
	if *target == domain.StatusArchived {
		return "", domain.NewValidationError("status", "unarchive target must not be ARCHIVED")
	}
	return *target, nil
}

// StatusChange is the audit payload of a status transition.
type StatusChange struct {
	From domain.EditorialStatus `json:"from"`
	To   domain.EditorialStatus `json:"to"`
}

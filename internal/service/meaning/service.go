// Package meaning manages glosses of a lemma in other languages.
package meaning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type meaningRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Meaning, error)
	Create(ctx context.Context, actor string, v *domain.Meaning) (*domain.Meaning, error)
	Update(ctx context.Context, actor string, v *domain.Meaning) (*domain.Meaning, error)
	Delete(ctx context.Context, id string) error
	ListByLemma(ctx context.Context, lemmaID string) ([]*domain.Meaning, error)
	ExistsByKey(ctx context.Context, lemmaID string, language string, priority int, excludeID string) (bool, error)
}

type lemmaRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Lemma, error)
}

type languageGate interface {
	RequireEnabled(ctx context.Context, code string) error
}

type auditLog interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides meaning operations.
type Service struct {
	meanings  meaningRepo
	lemmas    lemmaRepo
	languages languageGate
	audit     auditLog
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new meaning Service.
func NewService(
	log *slog.Logger,
	meanings meaningRepo,
	lemmas lemmaRepo,
	languages languageGate,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		meanings:  meanings,
		lemmas:    lemmas,
		languages: languages,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "meaning"),
	}
}

// requireLemmaLanguage loads the owning lemma and gates on its language.
func (s *Service) requireLemmaLanguage(ctx context.Context, lemmaID string) error {
	lemma, err := s.lemmas.GetByID(ctx, lemmaID)
	if err != nil {
		return fmt.Errorf("get lemma: %w", err)
	}
	return s.languages.RequireEnabled(ctx, lemma.Language)
}

type snapshot struct {
	MeaningLanguage string `json:"meaningLanguage"`
	MeaningText     string `json:"meaningText"`
	Priority        int    `json:"priority"`
}

func snapshotOf(m *domain.Meaning) snapshot {
	return snapshot{MeaningLanguage: m.MeaningLanguage, MeaningText: m.MeaningText, Priority: m.Priority}
}

func keyDetails(m *domain.Meaning) map[string]any {
	return map[string]any{
		"lemmaId":         m.LemmaID,
		"meaningLanguage": m.MeaningLanguage,
		"priority":        m.Priority,
	}
}

func conflict(lemmaID, language string, priority int) error {
	return domain.NewConflictError(domain.EntityTypeMeaning,
		"lemmaId", lemmaID, "meaningLanguage", language, "priority", priority)
}

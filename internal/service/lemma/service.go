// Package lemma implements editorial operations on dictionary headwords:
// CRUD with the (language, lemma_native) uniqueness guard, the status
// workflow, and the published-only public view.
package lemma

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type lemmaRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Lemma, error)
	Create(ctx context.Context, actor string, v *domain.Lemma) (*domain.Lemma, error)
	Update(ctx context.Context, actor string, v *domain.Lemma) (*domain.Lemma, error)
	Delete(ctx context.Context, id string) error
	Dependents(ctx context.Context, id string) ([]string, error)
	ExistsByLanguageAndNative(ctx context.Context, language string, native string, excludeID string) (bool, error)
	List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) ([]*domain.Lemma, int, error)
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

// Service provides lemma operations.
type Service struct {
	lemmas    lemmaRepo
	languages languageGate
	audit     auditLog
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new lemma Service.
func NewService(
	log *slog.Logger,
	lemmas lemmaRepo,
	languages languageGate,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		lemmas:    lemmas,
		languages: languages,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "lemma"),
	}
}

// snapshot is the audited view of a lemma's editable fields.
type snapshot struct {
	Language     string  `json:"language"`
	LemmaNative  string  `json:"lemmaNative"`
	LemmaLatin   *string `json:"lemmaLatin"`
	PartOfSpeech *string `json:"pos"`
	Notes        *string `json:"notes"`
}

func snapshotOf(l *domain.Lemma) snapshot {
	return snapshot{
		Language:     l.Language,
		LemmaNative:  l.LemmaNative,
		LemmaLatin:   l.LemmaLatin,
		PartOfSpeech: l.PartOfSpeech,
		Notes:        l.Notes,
	}
}

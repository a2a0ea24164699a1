// Package sentence implements editorial operations on usage sentences.
package sentence

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type sentenceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.UsageSentence, error)
	Create(ctx context.Context, actor string, v *domain.UsageSentence) (*domain.UsageSentence, error)
	Update(ctx context.Context, actor string, v *domain.UsageSentence) (*domain.UsageSentence, error)
	Delete(ctx context.Context, id string) error
	Dependents(ctx context.Context, id string) ([]string, error)
	List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) ([]*domain.UsageSentence, int, error)
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

// Service provides usage sentence operations.
type Service struct {
	sentences sentenceRepo
	languages languageGate
	audit     auditLog
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new sentence Service.
func NewService(
	log *slog.Logger,
	sentences sentenceRepo,
	languages languageGate,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		sentences: sentences,
		languages: languages,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "sentence"),
	}
}

type snapshot struct {
	Language       string  `json:"language"`
	SentenceNative string  `json:"sentenceNative"`
	SentenceLatin  *string `json:"sentenceLatin"`
	Translation    *string `json:"translation"`
	Register       string  `json:"register"`
	Explanation    *string `json:"explanation"`
	Difficulty     *int    `json:"difficulty"`
}

func snapshotOf(s *domain.UsageSentence) snapshot {
	return snapshot{
		Language:       s.Language,
		SentenceNative: s.SentenceNative,
		SentenceLatin:  s.SentenceLatin,
		Translation:    s.Translation,
		Register:       s.Register,
		Explanation:    s.Explanation,
		Difficulty:     s.Difficulty,
	}
}

// summary is the audit payload of create and delete events.
func summary(s *domain.UsageSentence) map[string]any {
	return map[string]any{
		"language":   s.Language,
		"register":   s.Register,
		"difficulty": s.Difficulty,
		"status":     s.Status,
	}
}

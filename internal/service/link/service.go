// Package link manages associations between lemmas and usage sentences.
package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type linkRepo interface {
	GetByID(ctx context.Context, id string) (*domain.LemmaSentenceLink, error)
	Create(ctx context.Context, actor string, v *domain.LemmaSentenceLink) (*domain.LemmaSentenceLink, error)
	Update(ctx context.Context, actor string, v *domain.LemmaSentenceLink) (*domain.LemmaSentenceLink, error)
	Delete(ctx context.Context, id string) error
	ListByLemma(ctx context.Context, lemmaID string) ([]*domain.LemmaSentenceLink, error)
	ListBySentence(ctx context.Context, sentenceID string) ([]*domain.LemmaSentenceLink, error)
	ExistsByPair(ctx context.Context, lemmaID string, sentenceID string) (bool, error)
}

type lemmaRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Lemma, error)
}

type sentenceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.UsageSentence, error)
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

// Service provides lemma-sentence link operations.
type Service struct {
	links     linkRepo
	lemmas    lemmaRepo
	sentences sentenceRepo
	languages languageGate
	audit     auditLog
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new link Service.
func NewService(
	log *slog.Logger,
	links linkRepo,
	lemmas lemmaRepo,
	sentences sentenceRepo,
	languages languageGate,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		links:     links,
		lemmas:    lemmas,
		sentences: sentences,
		languages: languages,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "link"),
	}
}

// requireEnabledEnds loads both ends of a link and gates on each language.
func (s *Service) requireEnabledEnds(ctx context.Context, lemmaID, sentenceID string) error {
	lemma, err := s.lemmas.GetByID(ctx, lemmaID)
	if err != nil {
		return fmt.Errorf("get lemma: %w", err)
	}
	sentence, err := s.sentences.GetByID(ctx, sentenceID)
	if err != nil {
		return fmt.Errorf("get sentence: %w", err)
	}
	if err := s.languages.RequireEnabled(ctx, lemma.Language); err != nil {
		return err
	}
	if sentence.Language != lemma.Language {
		return s.languages.RequireEnabled(ctx, sentence.Language)
	}
	return nil
}

type snapshot struct {
	SurfaceFormID *string         `json:"surfaceFormId"`
	LinkType      domain.LinkType `json:"linkType"`
}

func details(l *domain.LemmaSentenceLink) map[string]any {
	return map[string]any{
		"lemmaId":       l.LemmaID,
		"sentenceId":    l.SentenceID,
		"surfaceFormId": l.SurfaceFormID,
		"linkType":      l.LinkType,
	}
}

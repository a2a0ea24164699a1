// Package pronunciation manages audio recordings attached to lemmas and
// usage sentences.
package pronunciation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type pronunciationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Pronunciation, error)
	Create(ctx context.Context, actor string, v *domain.Pronunciation) (*domain.Pronunciation, error)
	Update(ctx context.Context, actor string, v *domain.Pronunciation) (*domain.Pronunciation, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) ([]*domain.Pronunciation, error)
	ExistsByKey(ctx context.Context, ownerType domain.OwnerType, ownerID string, audioURI string, excludeID string) (bool, error)
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

// owner is what a pronunciation needs to know about the lemma or sentence
// it is attached to.
type owner struct {
	language  string
	published bool
}

// ownerLookup loads an owner. A missing owner yields domain.ErrNotFound.
type ownerLookup func(ctx context.Context, id string) (owner, error)

// Service provides pronunciation operations.
type Service struct {
	pronunciations pronunciationRepo
	owners         map[domain.OwnerType]ownerLookup
	languages      languageGate
	audit          auditLog
	tx             txManager
	log            *slog.Logger
}

// NewService creates a new pronunciation Service.
func NewService(
	log *slog.Logger,
	pronunciations pronunciationRepo,
	lemmas lemmaRepo,
	sentences sentenceRepo,
	languages languageGate,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		pronunciations: pronunciations,
		owners: map[domain.OwnerType]ownerLookup{
			domain.OwnerTypeLemma: func(ctx context.Context, id string) (owner, error) {
				l, err := lemmas.GetByID(ctx, id)
				if err != nil {
					return owner{}, err
				}
				return owner{language: l.Language, published: l.IsPublished()}, nil
			},
			domain.OwnerTypeSentence: func(ctx context.Context, id string) (owner, error) {
				s, err := sentences.GetByID(ctx, id)
				if err != nil {
					return owner{}, err
				}
				return owner{language: s.Language, published: s.IsPublished()}, nil
			},
		},
		languages: languages,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "pronunciation"),
	}
}

// lookupOwner resolves the owner of a pronunciation through the strategy
// registered for its type.
func (s *Service) lookupOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) (owner, error) {
	lookup, ok := s.owners[ownerType]
	if !ok {
		return owner{}, domain.NewValidationError("owner_type", "unsupported owner type "+ownerType.String())
	}
	return lookup(ctx, ownerID)
}

// requireWritableOwner loads the owner and gates on its language.
func (s *Service) requireWritableOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) error {
	o, err := s.lookupOwner(ctx, ownerType, ownerID)
	if err != nil {
		return fmt.Errorf("get %s owner: %w", strings.ToLower(ownerType.String()), err)
	}
	return s.languages.RequireEnabled(ctx, o.language)
}

type snapshot struct {
	Speaker    *string `json:"speaker"`
	Region     *string `json:"region"`
	AudioURI   string  `json:"audioUri"`
	DurationMs *int    `json:"durationMs"`
}

func snapshotOf(p *domain.Pronunciation) snapshot {
	return snapshot{Speaker: p.Speaker, Region: p.Region, AudioURI: p.AudioURI, DurationMs: p.DurationMs}
}

// Package surfaceform manages inflected and alternate spellings of lemmas.
package surfaceform

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type formRepo interface {
	GetByID(ctx context.Context, id string) (*domain.SurfaceForm, error)
	Create(ctx context.Context, actor string, v *domain.SurfaceForm) (*domain.SurfaceForm, error)
	Update(ctx context.Context, actor string, v *domain.SurfaceForm) (*domain.SurfaceForm, error)
	Delete(ctx context.Context, id string) error
	ListByLemma(ctx context.Context, lemmaID string) ([]*domain.SurfaceForm, error)
	ExistsByKey(ctx context.Context, lemmaID string, formNative string, excludeID string) (bool, error)
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

// Service provides surface form operations.
type Service struct {
	forms     formRepo
	lemmas    lemmaRepo
	languages languageGate
	audit     auditLog
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new surface form Service.
func NewService(
	log *slog.Logger,
	forms formRepo,
	lemmas lemmaRepo,
	languages languageGate,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		forms:     forms,
		lemmas:    lemmas,
		languages: languages,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "surfaceform"),
	}
}

type snapshot struct {
	FormNative string  `json:"formNative"`
	FormLatin  *string `json:"formLatin"`
	FormType   *string `json:"formType"`
	Notes      *string `json:"notes"`
}

func snapshotOf(f *domain.SurfaceForm) snapshot {
	return snapshot{FormNative: f.FormNative, FormLatin: f.FormLatin, FormType: f.FormType, Notes: f.Notes}
}

func keyDetails(f *domain.SurfaceForm) map[string]any {
	return map[string]any{
		"lemmaId":    f.LemmaID,
		"formNative": f.FormNative,
		"formType":   f.FormType,
	}
}

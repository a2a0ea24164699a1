// Package language implements the language registry: the set of languages
// content may be written in, and the gate every content write passes through.
package language

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type languageRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Language, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ListAll(ctx context.Context) ([]*domain.Language, error)
	ListEnabled(ctx context.Context) ([]*domain.Language, error)
	Create(ctx context.Context, actor string, lang *domain.Language) (*domain.Language, error)
	Update(ctx context.Context, actor string, lang *domain.Language) (*domain.Language, error)
}

type auditLog interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxCodeLength bounds language codes (ISO 639-1 or similar).
const MaxCodeLength = 10

// Service provides language registry operations.
type Service struct {
	langs languageRepo
	audit auditLog
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new language Service.
func NewService(
	log *slog.Logger,
	langs languageRepo,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		langs: langs,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "language"),
	}
}

// snapshot is the audited view of a language.
type snapshot struct {
	Code                  string  `json:"code"`
	Name                  string  `json:"name"`
	Script                string  `json:"script"`
	TransliterationScheme *string `json:"transliterationScheme"`
	Enabled               bool    `json:"enabled"`
}

func snapshotOf(l *domain.Language) snapshot {
	return snapshot{
		Code:                  l.Code,
		Name:                  l.Name,
		Script:                l.Script,
		TransliterationScheme: l.TransliterationScheme,
		Enabled:               l.Enabled,
	}
}

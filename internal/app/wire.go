package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/audit"
	languagerepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/language"
	lemmarepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/lemma"
	linkrepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/link"
	meaningrepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/meaning"
	pronunciationrepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/pronunciation"
	sentencerepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/sentence"
	surfaceformrepo "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres/surfaceform"
	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/config"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/audit"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/language"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/lemma"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/link"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/meaning"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/pronunciation"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/sentence"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/surfaceform"
	"github.com/heartmarshall/bhashamitra-backend/internal/transport/middleware"
	"github.com/heartmarshall/bhashamitra-backend/internal/transport/rest"
)

// Services holds every domain service, wired to PostgreSQL repositories
// sharing one transaction manager.
type Services struct {
	Audit          *audit.Service
	Languages      *language.Service
	Lemmas         *lemma.Service
	Sentences      *sentence.Service
	Meanings       *meaning.Service
	SurfaceForms   *surfaceform.Service
	Links          *link.Service
	Pronunciations *pronunciation.Service
}

// NewServices builds the service graph on top of db.
func NewServices(logger *slog.Logger, db postgres.DB) *Services {
	tx := postgres.NewTxManager(db)

	lemmas := lemmarepo.New(db)
	sentences := sentencerepo.New(db)

	auditSvc := audit.NewService(logger, auditrepo.New(db))
	languageSvc := language.NewService(logger, languagerepo.New(db), auditSvc, tx)

	return &Services{
		Audit:          auditSvc,
		Languages:      languageSvc,
		Lemmas:         lemma.NewService(logger, lemmas, languageSvc, auditSvc, tx),
		Sentences:      sentence.NewService(logger, sentences, languageSvc, auditSvc, tx),
		Meanings:       meaning.NewService(logger, meaningrepo.New(db), lemmas, languageSvc, auditSvc, tx),
		SurfaceForms:   surfaceform.NewService(logger, surfaceformrepo.New(db), lemmas, languageSvc, auditSvc, tx),
		Links:          link.NewService(logger, linkrepo.New(db), lemmas, sentences, languageSvc, auditSvc, tx),
		Pronunciations: pronunciation.NewService(logger, pronunciationrepo.New(db), lemmas, sentences, languageSvc, auditSvc, tx),
	}
}

// HTTPDeps are the collaborators of the HTTP handler that live outside the
// service graph.
type HTTPDeps struct {
	DB       interface{ Ping(ctx context.Context) error }
	Verifier interface {
		Verify(token string) (*auth.Principal, error)
	}
	Limiter *middleware.RateLimiter
}

// NewHTTPHandler assembles the router and the middleware chain. Middleware
// order: request id, recovery, tracing, logging, CORS, identity.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, svc *Services, deps HTTPDeps) http.Handler {
	handlers := rest.Handlers{
		Health:        rest.NewHealthHandler(deps.DB, BuildVersion()),
		Languages:     rest.NewLanguageHandler(svc.Languages, logger),
		Lemmas:        rest.NewLemmaHandler(svc.Lemmas, logger),
		Sentences:     rest.NewSentenceHandler(svc.Sentences, logger),
		Meanings:      rest.NewMeaningHandler(svc.Meanings, logger),
		Forms:         rest.NewSurfaceFormHandler(svc.SurfaceForms, logger),
		Links:         rest.NewLinkHandler(svc.Links, logger),
		Pronunciation: rest.NewPronunciationHandler(svc.Pronunciations, logger),
		Audit:         rest.NewAuditHandler(svc.Audit, logger),
		Build:         CurrentBuild(),
	}

	routerCfg := rest.RouterConfig{EditorGroups: cfg.Auth.EditorGroups}
	if deps.Limiter != nil {
		routerCfg.PublicLimit = deps.Limiter.Limit(cfg.Server.PublicRateLimit)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Tracing(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Identity(deps.Verifier, logger),
	)(rest.NewRouter(handlers, routerCfg))
}

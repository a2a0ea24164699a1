package rest

import (
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/transport/middleware"
)

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Health        *HealthHandler
	Languages     *LanguageHandler
	Lemmas        *LemmaHandler
	Sentences     *SentenceHandler
	Meanings      *MeaningHandler
	Forms         *SurfaceFormHandler
	Links         *LinkHandler
	Pronunciation *PronunciationHandler
	Audit         *AuditHandler
	Build         any
}

// RouterConfig holds the guards applied to route groups.
type RouterConfig struct {
	// EditorGroups may mutate content under /api/admin.
	EditorGroups []string
	// PublicLimit wraps /api/public; nil leaves it unlimited.
	PublicLimit middleware.Middleware
}

// NewRouter registers every route. Admin routes require an authenticated
// principal and, for writes, editor group membership. Public routes only
// ever expose published content.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	root := http.NewServeMux()

	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.HandleFunc("GET /api/version", Version(h.Build))
	root.Handle("GET /api/me", middleware.RequireAuth(http.HandlerFunc(Me)))

	admin := http.NewServeMux()
	registerAdmin(admin, h)
	root.Handle("/api/admin/", middleware.Chain(
		middleware.RequireAuth,
		middleware.RequireEditor(cfg.EditorGroups),
	)(admin))

	public := http.NewServeMux()
	registerPublic(public, h)
	root.Handle("/api/public/", middleware.Chain(cfg.PublicLimit)(public))

	return root
}

func registerAdmin(mux *http.ServeMux, h Handlers) {
	const p = "/api/admin"

	mux.HandleFunc("GET "+p+"/languages", h.Languages.ListAll)
	mux.HandleFunc("POST "+p+"/languages", h.Languages.Create)
	mux.HandleFunc("GET "+p+"/languages/{code}", h.Languages.Get)
	mux.HandleFunc("PATCH "+p+"/languages/{code}", h.Languages.Update)
	mux.HandleFunc("PUT "+p+"/languages/{code}/enabled", h.Languages.SetEnabled)

	mux.HandleFunc("GET "+p+"/lemmas", h.Lemmas.List)
	mux.HandleFunc("POST "+p+"/lemmas", h.Lemmas.Create)
	mux.HandleFunc("GET "+p+"/lemmas/{id}", h.Lemmas.Get)
	mux.HandleFunc("PATCH "+p+"/lemmas/{id}", h.Lemmas.Update)
	mux.HandleFunc("DELETE "+p+"/lemmas/{id}", h.Lemmas.Delete)
	mux.HandleFunc("PUT "+p+"/lemmas/{id}/status", h.Lemmas.SetStatus)
	mux.HandleFunc("POST "+p+"/lemmas/{id}/archive", h.Lemmas.Archive)
	mux.HandleFunc("POST "+p+"/lemmas/{id}/unarchive", h.Lemmas.Unarchive)
	mux.HandleFunc("GET "+p+"/lemmas/{id}/meanings", h.Meanings.ListByLemma)
	mux.HandleFunc("POST "+p+"/lemmas/{id}/meanings", h.Meanings.Create)
	mux.HandleFunc("GET "+p+"/lemmas/{id}/forms", h.Forms.ListByLemma)
	mux.HandleFunc("POST "+p+"/lemmas/{id}/forms", h.Forms.Create)
	mux.HandleFunc("GET "+p+"/lemmas/{id}/links", h.Links.ListByLemma)

	mux.HandleFunc("GET "+p+"/sentences", h.Sentences.List)
	mux.HandleFunc("POST "+p+"/sentences", h.Sentences.Create)
	mux.HandleFunc("GET "+p+"/sentences/{id}", h.Sentences.Get)
	mux.HandleFunc("PATCH "+p+"/sentences/{id}", h.Sentences.Update)
	mux.HandleFunc("DELETE "+p+"/sentences/{id}", h.Sentences.Delete)
	mux.HandleFunc("PUT "+p+"/sentences/{id}/status", h.Sentences.SetStatus)
	mux.HandleFunc("POST "+p+"/sentences/{id}/archive", h.Sentences.Archive)
	mux.HandleFunc("POST "+p+"/sentences/{id}/unarchive", h.Sentences.Unarchive)
	mux.HandleFunc("GET "+p+"/sentences/{id}/links", h.Links.ListBySentence)

	mux.HandleFunc("GET "+p+"/meanings/{id}", h.Meanings.Get)
	mux.HandleFunc("PATCH "+p+"/meanings/{id}", h.Meanings.Update)
	mux.HandleFunc("DELETE "+p+"/meanings/{id}", h.Meanings.Delete)

	mux.HandleFunc("GET "+p+"/forms/{id}", h.Forms.Get)
	mux.HandleFunc("PATCH "+p+"/forms/{id}", h.Forms.Update)
	mux.HandleFunc("DELETE "+p+"/forms/{id}", h.Forms.Delete)

	mux.HandleFunc("POST "+p+"/links", h.Links.Create)
	mux.HandleFunc("GET "+p+"/links/{id}", h.Links.Get)
	mux.HandleFunc("PATCH "+p+"/links/{id}", h.Links.Update)
	mux.HandleFunc("DELETE "+p+"/links/{id}", h.Links.Delete)

	mux.HandleFunc("GET "+p+"/pronunciations", h.Pronunciation.ListByOwner)
	mux.HandleFunc("POST "+p+"/pronunciations", h.Pronunciation.Create)
	mux.HandleFunc("GET "+p+"/pronunciations/{id}", h.Pronunciation.Get)
	mux.HandleFunc("PATCH "+p+"/pronunciations/{id}", h.Pronunciation.Update)
	mux.HandleFunc("DELETE "+p+"/pronunciations/{id}", h.Pronunciation.Delete)

	mux.HandleFunc("GET "+p+"/audit/activity", h.Audit.Activity)
	mux.HandleFunc("GET "+p+"/audit/{entityType}/{entityId}", h.Audit.Timeline)
	mux.HandleFunc("GET "+p+"/audit/{entityType}/{entityId}/latest", h.Audit.Latest)
}

func registerPublic(mux *http.ServeMux, h Handlers) {
	const p = "/api/public"

	mux.HandleFunc("GET "+p+"/languages", h.Languages.ListEnabled)
	mux.HandleFunc("GET "+p+"/languages/{code}", h.Languages.GetEnabled)
	mux.HandleFunc("GET "+p+"/languages/{code}/enabled", h.Languages.IsEnabled)
	mux.HandleFunc("GET "+p+"/languages/{code}/lemmas", h.Lemmas.ListPublished)
	mux.HandleFunc("GET "+p+"/languages/{code}/sentences", h.Sentences.ListPublished)

	mux.HandleFunc("GET "+p+"/lemmas/{id}", h.Lemmas.GetPublished)
	mux.HandleFunc("GET "+p+"/lemmas/{id}/meanings", h.Meanings.ListPublishedByLemma)
	mux.HandleFunc("GET "+p+"/lemmas/{id}/forms", h.Forms.ListPublishedByLemma)
	mux.HandleFunc("GET "+p+"/lemmas/{id}/links", h.Links.ListPublishedByLemma)

	mux.HandleFunc("GET "+p+"/sentences/{id}", h.Sentences.GetPublished)

	mux.HandleFunc("GET "+p+"/pronunciations/{ownerType}/{ownerId}", h.Pronunciation.ListPublicByOwner)
}

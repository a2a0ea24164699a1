package rest

import (
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
)

type meResponse struct {
	Actor    string   `json:"actor"`
	Email    string   `json:"email,omitempty"`
	Username string   `json:"username,omitempty"`
	Name     string   `json:"name,omitempty"`
	Groups   []string `json:"groups"`
}

// Me handles GET /api/me. The route is wrapped in RequireAuth.
func Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	groups := p.Groups
	if groups == nil {
		groups = []string{}
	}
	writeJSON(w, http.StatusOK, meResponse{
		Actor:    auth.ResolveActor(p),
		Email:    p.Email,
		Username: p.Username,
		Name:     p.Name,
		Groups:   groups,
	})
}

// Version serves a fixed build payload on GET /api/version.
func Version(info any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}

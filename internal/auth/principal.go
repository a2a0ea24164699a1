package auth

import (
	"context"
	"slices"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Principal is the authenticated caller as described by the identity provider.
type Principal struct {
	Subject  string
	Email    string
	Username string
	Name     string
	Groups   []string
}

// InAnyGroup reports whether the principal belongs to at least one of groups.
// Comparison is case-insensitive.
func (p *Principal) InAnyGroup(groups ...string) bool {
	if p == nil {
		return false
	}
	for _, g := range groups {
		if slices.ContainsFunc(p.Groups, func(have string) bool { return strings.EqualFold(have, g) }) {
			return true
		}
	}
	return false
}

// ResolveActor picks the audit actor for a principal: email, then username,
// then name. A nil principal or one with none of those is the system actor.
func ResolveActor(p *Principal) string {
	if p == nil {
		return domain.SystemActor
	}
	for _, v := range []string{p.Email, p.Username, p.Name} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return domain.SystemActor
}

type principalKey struct{}

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx returns the principal stored by WithPrincipal.
func PrincipalFromCtx(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// ActorFromCtx resolves the audit actor of the request in ctx.
func ActorFromCtx(ctx context.Context) string {
	p, _ := PrincipalFromCtx(ctx)
	return ResolveActor(p)
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// identityClaims covers both plain OIDC claim names and the Cognito-style
// variants some identity providers emit.
type identityClaims struct {
	jwt.RegisteredClaims
	Email           string   `json:"email,omitempty"`
	Username        string   `json:"username,omitempty"`
	CognitoUsername string   `json:"cognito:username,omitempty"`
	Name            string   `json:"name,omitempty"`
	Groups          []string `json:"groups,omitempty"`
	CognitoGroups   []string `json:"cognito:groups,omitempty"`
}

func (c *identityClaims) principal() *Principal {
	p := &Principal{
		Subject:  c.Subject,
		Email:    c.Email,
		Username: c.Username,
		Name:     c.Name,
		Groups:   c.Groups,
	}
	if p.Username == "" {
		p.Username = c.CognitoUsername
	}
	if p.Name == "" {
		p.Name = c.Subject
	}
	if len(p.Groups) == 0 {
		p.Groups = c.CognitoGroups
	}
	return p
}

// TokenVerifier validates HS256 identity tokens signed with a shared secret.
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a verifier. An empty issuer disables the issuer check.
func NewTokenVerifier(secret, issuer string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates a bearer token and returns its principal.
// Every failure wraps domain.ErrUnauthorized.
func (v *TokenVerifier) Verify(token string) (*Principal, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims identityClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", errors.Join(domain.ErrUnauthorized, err))
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	return claims.principal(), nil
}

// Issue signs a token for p. It exists for local development and tests;
// production tokens come from the identity provider.
func (v *TokenVerifier) Issue(p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    p.Email,
		Username: p.Username,
		Name:     p.Name,
		Groups:   p.Groups,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

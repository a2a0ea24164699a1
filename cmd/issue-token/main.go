// Command issue-token mints an identity token signed with the configured
// shared secret. It is meant for local development and smoke tests against
// a running server, standing in for the identity provider.
//
// Usage:
//
//	issue-token --email=editor@example.com --groups=editors --ttl=1h
//
// Requires AUTH_IDENTITY_SECRET environment variable to be set; AUTH_ISSUER
// is honoured when present.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/config"
)

func main() {
	email := flag.String("email", "", "email claim of the principal")
	username := flag.String("username", "", "username claim of the principal")
	name := flag.String("name", "", "display name claim of the principal")
	groups := flag.String("groups", "", "comma-separated group memberships")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" && *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --email=user@example.com [--groups=editors] [--ttl=1h]")
		os.Exit(1)
	}

	secret := os.Getenv("AUTH_IDENTITY_SECRET")
	if secret == "" {
		log.Fatal("AUTH_IDENTITY_SECRET environment variable is required")
	}

	subject := *email
	if subject == "" {
		subject = *username
	}

	verifier := auth.NewTokenVerifier(secret, os.Getenv("AUTH_ISSUER"))
	token, err := verifier.Issue(auth.Principal{
		Subject:  subject,
		Email:    *email,
		Username: *username,
		Name:     *name,
		Groups:   config.SplitList(*groups),
	}, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}

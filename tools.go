//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Mocks are generated with github.com/matryer/moq via the //go:generate
// directives next to each consumer interface. Migrations run through
// cmd/migrate, which embeds goose.

// Package migrations contains the goose SQL migrations for the editorial store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

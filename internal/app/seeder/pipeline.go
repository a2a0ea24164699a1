// Package seeder bootstraps the language registry from a YAML seed file.
// Every write goes through the language service, so seeded languages are
// audited like any other edit, attributed to the system actor.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/language"
)

type languageStore interface {
	GetByCode(ctx context.Context, code string) (*domain.Language, error)
	Create(ctx context.Context, actor string, input language.CreateInput) (*domain.Language, error)
	Update(ctx context.Context, actor string, input language.UpdateInput) (*domain.Language, error)
	SetEnabled(ctx context.Context, actor, code string, enabled bool) (*domain.Language, error)
}

// Result counts what a run did. A language that fails is counted in Errors
// and does not stop the remaining ones.
type Result struct {
	Created   int
	Updated   int
	Unchanged int
	Errors    int
}

// Pipeline reconciles the registry with a seed file.
type Pipeline struct {
	log   *slog.Logger
	store languageStore
	cfg   Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store languageStore, cfg Config) *Pipeline {
	return &Pipeline{
		log:   log.With("component", "seeder"),
		store: store,
		cfg:   cfg,
	}
}

// Run applies every seed. In dry-run mode it only reports what would change.
func (p *Pipeline) Run(ctx context.Context) Result {
	var res Result
	for _, seed := range p.cfg.Languages {
		outcome, err := p.apply(ctx, seed)
		if err != nil {
			res.Errors++
			p.log.ErrorContext(ctx, "seed language",
				slog.String("code", seed.Code),
				slog.String("error", err.Error()),
			)
			continue
		}
		switch outcome {
		case outcomeCreated:
			res.Created++
		case outcomeUpdated:
			res.Updated++
		default:
			res.Unchanged++
		}
		p.log.InfoContext(ctx, "seed language",
			slog.String("code", seed.Code),
			slog.String("outcome", string(outcome)),
			slog.Bool("dry_run", p.cfg.DryRun),
		)
	}
	return res
}

type outcome string

const (
	outcomeCreated   outcome = "created"
	outcomeUpdated   outcome = "updated"
	outcomeUnchanged outcome = "unchanged"
)

func (p *Pipeline) apply(ctx context.Context, seed LanguageSeed) (outcome, error) {
	existing, err := p.store.GetByCode(ctx, seed.Code)
	if errors.Is(err, domain.ErrNotFound) {
		if p.cfg.DryRun {
			return outcomeCreated, nil
		}
		_, err := p.store.Create(ctx, domain.SystemActor, language.CreateInput{
			Code:                  seed.Code,
			Name:                  seed.Name,
			Script:                seed.Script,
			TransliterationScheme: seed.TransliterationScheme,
			Enabled:               seed.Enabled,
		})
		if err != nil {
			return "", fmt.Errorf("create: %w", err)
		}
		return outcomeCreated, nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}

	update, changed := diff(existing, seed)
	toggle := existing.Enabled != seed.Enabled
	if !changed && !toggle {
		return outcomeUnchanged, nil
	}
	if p.cfg.DryRun {
		return outcomeUpdated, nil
	}

	if changed {
		if _, err := p.store.Update(ctx, domain.SystemActor, update); err != nil {
			return "", fmt.Errorf("update: %w", err)
		}
	}
	if toggle {
		if _, err := p.store.SetEnabled(ctx, domain.SystemActor, existing.Code, seed.Enabled); err != nil {
			return "", fmt.Errorf("set enabled: %w", err)
		}
	}
	return outcomeUpdated, nil
}

// diff builds a partial update carrying only the descriptive fields that differ.
func diff(existing *domain.Language, seed LanguageSeed) (language.UpdateInput, bool) {
	in := language.UpdateInput{Code: existing.Code}
	changed := false
	if seed.Name != existing.Name {
		in.Name = &seed.Name
		changed = true
	}
	if seed.Script != existing.Script {
		in.Script = &seed.Script
		changed = true
	}
	if !equalPtr(seed.TransliterationScheme, existing.TransliterationScheme) {
		scheme := ""
		if seed.TransliterationScheme != nil {
			scheme = *seed.TransliterationScheme
		}
		in.TransliterationScheme = &scheme
		changed = true
	}
	return in, changed
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

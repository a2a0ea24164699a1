// Command seed-languages reconciles the language registry with a YAML seed
// file. Missing languages are created; existing ones are updated to match.
// Every change is audited and attributed to the system actor.
//
// Flags:
//
//	--file     path to the seed file (required)
//	--dry-run  report changes without writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/app"
	"github.com/heartmarshall/bhashamitra-backend/internal/app/seeder"
	"github.com/heartmarshall/bhashamitra-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the language seed YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "report changes without writing")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg, err := seeder.LoadConfig(*fileFlag)
	if err != nil {
		logger.Error("load seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seedCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	services := app.NewServices(logger, pool)
	res := seeder.NewPipeline(logger, services.Languages, *seedCfg).Run(ctx)

	logger.Info("seed completed",
		slog.Int("created", res.Created),
		slog.Int("updated", res.Updated),
		slog.Int("unchanged", res.Unchanged),
		slog.Int("errors", res.Errors),
	)
	if res.Errors > 0 {
		os.Exit(1)
	}
}

// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command ingest loads a catalog export into the database.
//
// # Usage
//
//	ingest -file books.csv
//
// The export is a CSV with one book per row: author, title, file
// basename, year, form, comma-separated genres, tags. Rows whose title
// is already in the catalog are skipped, so re-running the same export
// is safe. The command exits non-zero if any row failed.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/taibuivan/chitalka/internal/ingest"
	"github.com/taibuivan/chitalka/internal/platform/config"
	"github.com/taibuivan/chitalka/internal/platform/migration"
	pgstore "github.com/taibuivan/chitalka/internal/platform/postgres"
)

func main() {
	filePath := flag.String("file", "", "path to the CSV catalog export")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "chitalka-ingest"))
	slog.SetDefault(log)

	if *filePath == "" {
		log.Error("missing required -file flag")
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	// The import writes through the same schema the API serves, so the
	// migrations must be current before any row goes in.
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	file, err := os.Open(*filePath)
	must(log, err, "open export file")
	defer file.Close()

	rows, err := ingest.ReadRows(file)
	must(log, err, "parse export file")

	log.Info("ingest_starting",
		slog.String("file", *filePath),
		slog.Int("rows", len(rows)),
	)

	service := ingest.NewService(ingest.NewPostgresRepository(pool), log)
	summary := service.Run(context.Background(), rows)

	log.Info("ingest_finished",
		slog.Int("total", summary.Total),
		slog.Int("created", summary.Created),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Int("new_authors", summary.Authors),
		slog.Int("new_genres", summary.Genres),
	)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

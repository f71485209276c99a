package main

// Run database migrations and purge expired sessions:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/config"
	"msa-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	store := &sessions.PGStore{DB: sqlDB, TTL: cfg.SessionTTL}
	purged, err := store.PurgeExpired(ctx)
	if err != nil {
		log.Printf("failed to purge expired sessions: %v", err)
		os.Exit(1)
	}
	log.Printf("purged %d expired sessions", purged)
}

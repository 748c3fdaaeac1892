package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"

	"lovilike-backoffice/config"
)

// Connect opens the database connection and verifies it with a ping.
// The initial ping is retried with exponential backoff so the service survives
// a database that is still coming up.
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	database, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.DBConnectTimeout

	operation := func() error {
		if err := database.PingContext(ctx); err != nil {
			log.Printf("⏳ Database not ready yet: %v", err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Database connection established successfully")
	return database, nil
}

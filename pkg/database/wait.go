package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultConnectAttempts = 5
	connectBackoffBase     = 500 * time.Millisecond
)

// WaitForDatabase pings the database with exponential backoff until it
// answers or attempts run out. Useful when the API starts alongside
// PostgreSQL in docker compose.
func WaitForDatabase(ctx context.Context, db *gorm.DB, attempts uint64, log *zap.Logger) error {
	return waitFor(ctx, func(ctx context.Context) error {
		return Ping(ctx, db)
	}, retry.NewExponential(connectBackoffBase), attempts, log)
}

func waitFor(ctx context.Context, ping func(context.Context) error, backoff retry.Backoff, attempts uint64, log *zap.Logger) error {
	if attempts == 0 {
		attempts = 1
	}

	try := 0
	err := retry.Do(ctx, retry.WithMaxRetries(attempts-1, backoff), func(ctx context.Context) error {
		try++
		if err := ping(ctx); err != nil {
			log.Warn("database not ready", zap.Int("attempt", try), zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database unreachable after %d attempts: %w", try, err)
	}
	return nil
}

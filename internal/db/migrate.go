package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"ads-dashboard/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate brings the campaign_daily_metrics schema at addr to
// migrations.Version using the embedded SQL files. Cancelling ctx stops
// the run after the migration in progress.
func Migrate(ctx context.Context, addr string, logger *slog.Logger) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirty, from)
	}
	if from == migrations.Version {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			mg.GracefulStop <- true
		case <-done:
		}
	}()

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)),
	)
	return nil
}

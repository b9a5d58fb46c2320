// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/zlog"
)

//go:embed sql/*.sql
var files embed.FS

var ErrMigrationFailed = errors.New("failed to apply migrations")

// gooseLogger routes goose output through zlog.
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	zlog.Logger.Error().Msgf(format, v...)
}

func (gooseLogger) Printf(format string, v ...interface{}) {
	zlog.Logger.Info().Msgf(format, v...)
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(files)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationFailed, err)
	}

	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationFailed, err)
	}

	return nil
}

package database

import (
	"context"
	_ "embed"

	"myevent-api/core/logger"
)

//go:embed schema.sql
var schema string

// Migrate applies the idempotent schema. Every statement uses IF NOT EXISTS.
func (d *Database) Migrate(ctx context.Context) error {
	if _, err := d.sqlx.ExecContext(ctx, schema); err != nil {
		logger.Error("Database:Migrate:Error:", err)
		return err
	}
	logger.Info("Database schema applied")
	return nil
}

// Package sqlstore implements the domain repositories on a relational
// database through the bun ORM. Postgres is used in production; sqlite
// backs local runs and tests. The dialect is chosen from the DSN.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/user/provider-registry/internal/domain"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the database named by dsn. postgres:// DSNs use the
// pq driver; anything else is treated as a sqlite filename.
func Open(dsn string) (*bun.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateSchema creates the provider and user tables when they do not
// already exist. Schema migration tooling is out of scope; the two
// tables here are the whole persisted surface.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*domain.Provider)(nil),
		(*domain.User)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

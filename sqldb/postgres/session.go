// Package postgres provides the scs session store for PostgreSQL databases.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
)

func NewSessionStore(ctx context.Context, db *sql.DB) (scs.Store, error) {

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BYTEA NOT NULL,
			expiry TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("creating sessions table: %w", err)
		}
	}

	return postgresstore.New(db), nil
}

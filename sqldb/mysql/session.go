// Package mysql provides the scs session store for MySQL databases.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/v2"
)

func NewSessionStore(ctx context.Context, db *sql.DB) (scs.Store, error) {

	// MySQL has no CREATE INDEX IF NOT EXISTS, so the index is part of the table definition
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			token CHAR(43) PRIMARY KEY,
			data BLOB NOT NULL,
			expiry TIMESTAMP(6) NOT NULL,
			INDEX sessions_expiry_idx (expiry)
		)`)
	if err != nil {
		return nil, fmt.Errorf("creating sessions table: %w", err)
	}

	return mysqlstore.New(db), nil
}

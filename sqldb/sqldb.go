// Package sqldb implements the account, profile and post stores on top of SQLite, MySQL or PostgreSQL.
package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/wansing/blog/core"
	"github.com/xo/dburl"
)

// ErrUnique is wrapped by errors which are caused by a unique constraint.
var ErrUnique = core.ErrUnique

// Open parses a database url (see github.com/xo/dburl), opens the database and pings it.
func Open(ctx context.Context, rawurl string) (*sqlx.DB, error) {

	u, err := dburl.Parse(rawurl)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	var driver = u.Driver
	if driver == "postgres" {
		driver = "pgx"
	}

	db, err := sqlx.Open(driver, u.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", driver, err)
	}

	return db, nil
}

func isPostgres(db interface{ DriverName() string }) bool {
	switch db.DriverName() {
	case "pgx", "postgres":
		return true
	default:
		return false
	}
}

// mapErr wraps ErrUnique around unique violations of all supported drivers.
func mapErr(err error) error {

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: %v", ErrUnique, err)
		}
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return fmt.Errorf("%w: %v", ErrUnique, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %v", ErrUnique, err)
	}

	return err
}

// insertID executes an INSERT statement and returns the id of the new row.
// PostgreSQL has no LastInsertId, so RETURNING is used there.
func insertID(ctx context.Context, db sqlx.ExtContext, query string, args ...interface{}) (int, error) {

	query = db.Rebind(query)

	if isPostgres(db) {
		var id int
		if err := db.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, mapErr(err)
		}
		return id, nil
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapErr(err)
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func exists(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, db.Rebind(query), args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func fromUnix(ts int64) time.Time {
	return time.Unix(ts, 0)
}

// Package sessions configures the scs session manager and its store.
package sessions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
	"github.com/wansing/blog/sqldb/mysql"
	"github.com/wansing/blog/sqldb/postgres"
	"github.com/wansing/blog/sqldb/sqlite3"
)

type Config struct {
	Path        string // cookie path, without trailing slash
	IdleTimeout time.Duration
	Lifetime    time.Duration
	Secure      bool
}

// NewManager creates a session manager which stores its data in store.
func NewManager(store scs.Store, cfg Config) *scs.SessionManager {

	var sm = scs.New()
	sm.Store = store
	sm.Cookie.Name = "blog_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Path = cfg.Path + "/"          // '"" will result in it being set to the path that the cookie was issued from'
	sm.Cookie.Persist = false                // don't store the cookie across browser sessions
	sm.Cookie.SameSite = http.SameSiteLaxMode // CSRF protection, as long as HTTP GET doesn't modify anything
	sm.Cookie.Secure = cfg.Secure            // false when running on localhost or behind a http proxy
	sm.IdleTimeout = cfg.IdleTimeout
	sm.Lifetime = cfg.Lifetime

	if sm.IdleTimeout == 0 {
		sm.IdleTimeout = 12 * time.Hour
	}
	if sm.Lifetime == 0 {
		sm.Lifetime = 720 * time.Hour
	}

	return sm
}

// SQLStore returns a session store which uses the "sessions" table of db, creating it if necessary.
func SQLStore(ctx context.Context, db *sqlx.DB) (scs.Store, error) {
	switch db.DriverName() {
	case "mysql":
		return mysql.NewSessionStore(ctx, db.DB)
	case "pgx", "postgres":
		return postgres.NewSessionStore(ctx, db.DB)
	case "sqlite3":
		return sqlite3.NewSessionStore(ctx, db.DB)
	default:
		return nil, fmt.Errorf("no session store for database driver %s", db.DriverName())
	}
}

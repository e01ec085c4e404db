package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Timestamps are stored as unix seconds.

var sqlite3Schema = []string{
	`CREATE TABLE IF NOT EXISTS account (
		id INTEGER PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL UNIQUE,
		password VARCHAR(128) NOT NULL,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		joined INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profile (
		account_id INTEGER PRIMARY KEY REFERENCES account(id) ON DELETE CASCADE,
		bio VARCHAR(500) NOT NULL DEFAULT '',
		avatar_url VARCHAR(200) NOT NULL DEFAULT '',
		created INTEGER NOT NULL,
		updated INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS post (
		id INTEGER PRIMARY KEY,
		author_id INTEGER NOT NULL REFERENCES account(id) ON DELETE CASCADE,
		title VARCHAR(200) NOT NULL UNIQUE,
		content TEXT NOT NULL,
		excerpt VARCHAR(300) NOT NULL DEFAULT '',
		created INTEGER NOT NULL,
		updated INTEGER NOT NULL,
		published BOOLEAN NOT NULL DEFAULT 1,
		views INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS post_created_idx ON post (created)`,
}

// collation should be utf8mb4_unicode_ci
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS account (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL UNIQUE,
		password VARCHAR(128) NOT NULL,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		joined BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profile (
		account_id INT NOT NULL PRIMARY KEY,
		bio VARCHAR(500) NOT NULL DEFAULT '',
		avatar_url VARCHAR(200) NOT NULL DEFAULT '',
		created BIGINT NOT NULL,
		updated BIGINT NOT NULL,
		FOREIGN KEY (account_id) REFERENCES account(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS post (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		author_id INT NOT NULL,
		title VARCHAR(200) NOT NULL UNIQUE,
		content MEDIUMTEXT NOT NULL,
		excerpt VARCHAR(300) NOT NULL DEFAULT '',
		created BIGINT NOT NULL,
		updated BIGINT NOT NULL,
		published BOOLEAN NOT NULL DEFAULT TRUE,
		views INT NOT NULL DEFAULT 0,
		INDEX post_created_idx (created),
		FOREIGN KEY (author_id) REFERENCES account(id) ON DELETE CASCADE
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS account (
		id SERIAL PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL UNIQUE,
		password VARCHAR(128) NOT NULL,
		first_name VARCHAR(30) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		joined BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profile (
		account_id INTEGER PRIMARY KEY REFERENCES account(id) ON DELETE CASCADE,
		bio VARCHAR(500) NOT NULL DEFAULT '',
		avatar_url VARCHAR(200) NOT NULL DEFAULT '',
		created BIGINT NOT NULL,
		updated BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS post (
		id SERIAL PRIMARY KEY,
		author_id INTEGER NOT NULL REFERENCES account(id) ON DELETE CASCADE,
		title VARCHAR(200) NOT NULL UNIQUE,
		content TEXT NOT NULL,
		excerpt VARCHAR(300) NOT NULL DEFAULT '',
		created BIGINT NOT NULL,
		updated BIGINT NOT NULL,
		published BOOLEAN NOT NULL DEFAULT TRUE,
		views INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS post_created_idx ON post (created)`,
}

// Migrate creates the tables if they don't exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {

	var schema []string
	switch db.DriverName() {
	case "sqlite3":
		schema = sqlite3Schema
	case "mysql":
		schema = mysqlSchema
	case "pgx", "postgres":
		schema = postgresSchema
	default:
		return fmt.Errorf("unknown database driver: %s", db.DriverName())
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

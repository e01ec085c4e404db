package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/wansing/blog/core"
	"golang.org/x/crypto/bcrypt"
)

type accountRow struct {
	ID        int    `db:"id"`
	Username  string `db:"username"`
	Email     string `db:"email"`
	Password  string `db:"password"` // bcrypt hash
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Joined    int64  `db:"joined"`
}

func (r *accountRow) account() *core.Account {
	return &core.Account{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Joined:    fromUnix(r.Joined),
	}
}

const accountColumns = "id, username, email, password, first_name, last_name, joined"

// AccountDB implements core.AccountDB.
type AccountDB struct {
	db   *sqlx.DB
	Cost int // bcrypt cost, defaults to bcrypt.DefaultCost
}

func NewAccountDB(db *sqlx.DB) *AccountDB {
	return &AccountDB{
		db:   db,
		Cost: bcrypt.DefaultCost,
	}
}

// Authenticate accepts the username or the email address as identifier. A matching username takes precedence.
func (adb *AccountDB) Authenticate(ctx context.Context, identifier, password string) (*core.Account, error) {

	var row accountRow
	err := adb.db.GetContext(ctx, &row, adb.db.Rebind(
		"SELECT "+accountColumns+" FROM account WHERE username = ? OR LOWER(email) = ? ORDER BY CASE WHEN username = ? THEN 0 ELSE 1 END LIMIT 1"),
		identifier, strings.ToLower(identifier), identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrAuth // unknown account
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, core.ErrAuth // wrong password
		}
		return nil, err
	}

	return row.account(), nil
}

// Create inserts the account and an empty profile in one transaction. It sets a.ID.
func (adb *AccountDB) Create(ctx context.Context, a *core.Account, password string) error {

	if password == "" {
		return errors.New("no password given")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), adb.Cost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	tx, err := adb.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // no-op after commit

	id, err := insertID(ctx, tx,
		"INSERT INTO account (username, email, password, first_name, last_name, joined) VALUES (?, ?, ?, ?, ?, ?)",
		a.Username, a.Email, string(hash), a.FirstName, a.LastName, a.Joined.Unix())
	if err != nil {
		return fmt.Errorf("inserting account: %w", err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO profile (account_id, bio, avatar_url, created, updated) VALUES (?, '', '', ?, ?)"),
		id, a.Joined.Unix(), a.Joined.Unix()); err != nil {
		return fmt.Errorf("inserting profile: %w", mapErr(err))
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	a.ID = id
	return nil
}

// EmailExists compares case-insensitively. Usernames count too, as both can be used to log in.
func (adb *AccountDB) EmailExists(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	return exists(ctx, adb.db, "SELECT COUNT(*) FROM account WHERE LOWER(email) = ? OR LOWER(username) = ?", email, email)
}

// UsernameExists also reports a username which equals an email address of another account.
func (adb *AccountDB) UsernameExists(ctx context.Context, username string) (bool, error) {
	return exists(ctx, adb.db, "SELECT COUNT(*) FROM account WHERE username = ? OR LOWER(email) = ?", username, strings.ToLower(username))
}

func (adb *AccountDB) get(ctx context.Context, where string, arg interface{}) (*core.Account, error) {
	var row accountRow
	err := adb.db.GetContext(ctx, &row, adb.db.Rebind("SELECT "+accountColumns+" FROM account WHERE "+where+" = ?"), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.account(), nil
}

func (adb *AccountDB) GetAccount(ctx context.Context, id int) (*core.Account, error) {
	return adb.get(ctx, "id", id)
}

func (adb *AccountDB) GetAccountByUsername(ctx context.Context, username string) (*core.Account, error) {
	return adb.get(ctx, "username", username)
}

func (adb *AccountDB) GetAllAccounts(ctx context.Context) ([]*core.Account, error) {

	var rows []accountRow
	if err := adb.db.SelectContext(ctx, &rows, "SELECT "+accountColumns+" FROM account ORDER BY username"); err != nil {
		return nil, err
	}

	var all = make([]*core.Account, 0, len(rows))
	for i := range rows {
		all = append(all, rows[i].account())
	}
	return all, nil
}

package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wansing/blog/core"
)

type profileRow struct {
	AccountID int    `db:"account_id"`
	Bio       string `db:"bio"`
	AvatarURL string `db:"avatar_url"`
	Created   int64  `db:"created"`
	Updated   int64  `db:"updated"`
}

// ProfileDB implements core.ProfileDB. Profiles are inserted by AccountDB.Create.
type ProfileDB struct {
	db *sqlx.DB
}

func NewProfileDB(db *sqlx.DB) *ProfileDB {
	return &ProfileDB{db: db}
}

func (pdb *ProfileDB) GetProfile(ctx context.Context, accountID int) (*core.Profile, error) {

	var row profileRow
	err := pdb.db.GetContext(ctx, &row, pdb.db.Rebind("SELECT account_id, bio, avatar_url, created, updated FROM profile WHERE account_id = ?"), accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &core.Profile{
		AccountID: row.AccountID,
		Bio:       row.Bio,
		AvatarURL: row.AvatarURL,
		Created:   fromUnix(row.Created),
		Updated:   fromUnix(row.Updated),
	}, nil
}

// UpdateProfile stores bio, avatar url and updated timestamp.
func (pdb *ProfileDB) UpdateProfile(ctx context.Context, p *core.Profile) error {

	var count int
	if err := pdb.db.GetContext(ctx, &count, pdb.db.Rebind("SELECT COUNT(*) FROM profile WHERE account_id = ?"), p.AccountID); err != nil {
		return err
	}
	if count == 0 {
		return core.ErrNotFound
	}

	_, err := pdb.db.ExecContext(ctx, pdb.db.Rebind("UPDATE profile SET bio = ?, avatar_url = ?, updated = ? WHERE account_id = ?"),
		p.Bio, p.AvatarURL, p.Updated.Unix(), p.AccountID)
	return err
}

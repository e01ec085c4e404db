//go:generate mockgen -source=account.go -destination=account_mock.go -package=core

package core

import (
	"context"
	"time"
)

// An Account is a registered user.
type Account struct {
	ID        int
	Username  string
	Email     string
	FirstName string
	LastName  string
	Joined    time.Time
}

// Name returns the full name, or the username if no name is known.
func (a *Account) Name() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	default:
		return a.Username
	}
}

// A Profile holds optional public information about an account.
type Profile struct {
	AccountID int
	Bio       string // up to 500 characters
	AvatarURL string
	Created   time.Time
	Updated   time.Time
}

// AccountDB is the account store. It owns password hashing.
//
// Create inserts the account together with an empty profile and sets a.ID.
// It returns an error wrapping ErrUnique if the username or email is taken.
//
// Authenticate returns ErrAuth if the identifier (username or email) is unknown
// or the password is wrong.
type AccountDB interface {
	Authenticate(ctx context.Context, identifier, password string) (*Account, error)
	Create(ctx context.Context, a *Account, password string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAccount(ctx context.Context, id int) (*Account, error)
	GetAllAccounts(ctx context.Context) ([]*Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// ProfileDB is the profile store. Profiles are created by AccountDB.Create.
type ProfileDB interface {
	GetProfile(ctx context.Context, accountID int) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error
}

package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wansing/blog/core"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	accounts *core.MockAccountDB
	posts    *core.MockPostDB
	profiles *core.MockProfileDB
	db       *core.CoreDB
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		accounts: core.NewMockAccountDB(ctrl),
		posts:    core.NewMockPostDB(ctrl),
		profiles: core.NewMockProfileDB(ctrl),
	}
	f.db = &core.CoreDB{
		AccountDB: f.accounts,
		PostDB:    f.posts,
		ProfileDB: f.profiles,
		Now:       func() time.Time { return fixedNow },
	}
	return f
}

func validSignup() *core.SignupForm {
	return &core.SignupForm{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@example.com",
		Password1: "s3cure-Passphrase",
		Password2: "s3cure-Passphrase",
	}
}

func TestSignup_Success(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
	f.accounts.EXPECT().EmailExists(gomock.Any(), "alice@example.com").Return(false, nil)
	f.accounts.EXPECT().
		Create(gomock.Any(), gomock.Any(), "s3cure-Passphrase").
		DoAndReturn(func(_ context.Context, a *core.Account, _ string) error {
			assert.Equal(t, "alice", a.Username)
			assert.Equal(t, "alice@example.com", a.Email)
			assert.Equal(t, "Alice", a.FirstName)
			assert.Equal(t, "Smith", a.LastName)
			assert.Equal(t, fixedNow, a.Joined)
			a.ID = 7
			return nil
		})

	result, err := f.db.Signup(context.Background(), nil, validSignup())
	require.NoError(t, err)

	assert.NoError(t, result.Err)
	assert.Equal(t, core.HomePath, result.Redirect)
	require.NotNil(t, result.Session)
	assert.Equal(t, 7, result.Session.ID)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, core.Success, result.Notifications[0].Style)
	assert.Equal(t, "Account created successfully! Welcome!", result.Notifications[0].Message)
}

func TestSignup_AlreadyLoggedIn(t *testing.T) {
	f := newFixture(t)

	// no store calls expected
	result, err := f.db.Signup(context.Background(), &core.Account{ID: 1}, &core.SignupForm{})
	require.NoError(t, err)

	assert.Equal(t, core.HomePath, result.Redirect)
	assert.Nil(t, result.Session)
	assert.Empty(t, result.Notifications)
	assert.NoError(t, result.Err)
}

func TestSignup_Invalid(t *testing.T) {

	tests := []struct {
		name          string
		modify        func(f *core.SignupForm)
		usernameTaken bool
		emailTaken    bool
		checkUsername bool
		checkEmail    bool
		wantFields    []string
	}{
		{
			name:          "email in use",
			modify:        func(f *core.SignupForm) {},
			emailTaken:    true,
			checkUsername: true,
			checkEmail:    true,
			wantFields:    []string{"email"},
		},
		{
			name:          "username in use",
			modify:        func(f *core.SignupForm) {},
			usernameTaken: true,
			checkUsername: true,
			checkEmail:    true,
			wantFields:    []string{"username"},
		},
		{
			name:          "passwords differ",
			modify:        func(f *core.SignupForm) { f.Password2 = "another-Passphrase" },
			checkUsername: true,
			checkEmail:    true,
			wantFields:    []string{"password2"},
		},
		{
			name:          "weak password",
			modify:        func(f *core.SignupForm) { f.Password1, f.Password2 = "12345", "12345" },
			checkUsername: true,
			checkEmail:    true,
			wantFields:    []string{"password2"},
		},
		{
			name:          "password similar to username",
			modify:        func(f *core.SignupForm) { f.Password1, f.Password2 = "alice2024!", "alice2024!" },
			checkUsername: true,
			checkEmail:    true,
			wantFields:    []string{"password2"},
		},
		{
			name:       "all fields empty",
			modify:     func(f *core.SignupForm) { *f = core.SignupForm{} },
			wantFields: []string{"first_name", "last_name", "username", "email", "password1", "password2"},
		},
		{
			name:          "invalid email",
			modify:        func(f *core.SignupForm) { f.Email = "Alice <alice@example.com>" },
			checkUsername: true,
			wantFields:    []string{"email"},
		},
		{
			name:       "invalid username",
			modify:     func(f *core.SignupForm) { f.Username = "alice smith" },
			checkEmail: true,
			wantFields: []string{"username"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			form := validSignup()
			tt.modify(form)

			if tt.checkUsername {
				f.accounts.EXPECT().UsernameExists(gomock.Any(), form.Username).Return(tt.usernameTaken, nil)
			}
			if tt.checkEmail {
				f.accounts.EXPECT().EmailExists(gomock.Any(), form.Email).Return(tt.emailTaken, nil)
			}
			// Create must not be called

			result, err := f.db.Signup(context.Background(), nil, form)
			require.NoError(t, err)

			var v *core.ValidationError
			require.True(t, errors.As(result.Err, &v))
			for _, field := range tt.wantFields {
				assert.True(t, v.Has(field), "expected error on %s, got %v", field, v)
			}

			assert.Empty(t, result.Redirect)
			assert.Nil(t, result.Session)
			assert.Len(t, result.Notifications, len(v.Fields))
			for _, n := range result.Notifications {
				assert.Equal(t, core.Danger, n.Style)
			}

			assert.Empty(t, form.Password1)
			assert.Empty(t, form.Password2)
		})
	}
}

func TestSignup_EmailNotificationNamesField(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
	f.accounts.EXPECT().EmailExists(gomock.Any(), "alice@example.com").Return(true, nil)

	result, err := f.db.Signup(context.Background(), nil, validSignup())
	require.NoError(t, err)

	require.Len(t, result.Notifications, 1)
	assert.Equal(t, "email: This email is already in use.", result.Notifications[0].Message)
}

func TestSignup_UniqueViolationFromStore(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
	f.accounts.EXPECT().EmailExists(gomock.Any(), "alice@example.com").Return(false, nil)
	f.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("inserting account: %w", core.ErrUnique))

	form := validSignup()
	result, err := f.db.Signup(context.Background(), nil, form)
	require.NoError(t, err)

	var v *core.ValidationError
	require.True(t, errors.As(result.Err, &v))
	assert.True(t, v.Has("username"))
	assert.Nil(t, result.Session)
	assert.Empty(t, form.Password1)
}

func TestSignup_StoreError(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, errors.New("db down"))

	_, err := f.db.Signup(context.Background(), nil, validSignup())
	assert.EqualError(t, err, "checking username: db down")
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		attrs    []string
		ok       bool
	}{
		{"s3cure-Passphrase", []string{"alice", "alice@example.com"}, true},
		{"short1!", nil, false},
		{"password", nil, false},
		{"1234567890", nil, false},
		{"xXaliceXx99", []string{"alice"}, false},
		{"mybobpassphrase", []string{"Bob@example.com"}, false},
		{"correct horse battery", []string{"Al"}, true}, // attributes shorter than 3 are ignored
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			problems := core.CheckPassword(tt.password, tt.attrs...)
			assert.Equal(t, tt.ok, len(problems) == 0, "problems: %v", problems)
		})
	}
}

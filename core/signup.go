package core

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxFirstNameLen = 30
	MaxLastNameLen  = 150
	MaxUsernameLen  = 150
	MaxEmailLen     = 254
)

// SignupForm contains the submitted registration fields.
type SignupForm struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password1 string
	Password2 string
}

// Clean trims spaces from all fields but the passwords.
func (f *SignupForm) Clean() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
}

func tooLong(max int, s string) string {
	return fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", max, utf8.RuneCountInString(s))
}

func validUsername(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("@.+-_", r) {
			continue
		}
		return false
	}
	return true
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validate checks the form without querying the store.
func (f *SignupForm) validate() *ValidationError {

	var v = &ValidationError{}

	var required = []struct {
		field string
		value string
	}{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"username", f.Username},
		{"email", f.Email},
		{"password1", f.Password1},
		{"password2", f.Password2},
	}
	for _, r := range required {
		if r.value == "" {
			v.Add(r.field, "This field is required.")
		}
	}

	if utf8.RuneCountInString(f.FirstName) > MaxFirstNameLen {
		v.Add("first_name", tooLong(MaxFirstNameLen, f.FirstName))
	}
	if utf8.RuneCountInString(f.LastName) > MaxLastNameLen {
		v.Add("last_name", tooLong(MaxLastNameLen, f.LastName))
	}

	if f.Username != "" {
		if utf8.RuneCountInString(f.Username) > MaxUsernameLen {
			v.Add("username", tooLong(MaxUsernameLen, f.Username))
		} else if !validUsername(f.Username) {
			v.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
		}
	}

	if f.Email != "" {
		if utf8.RuneCountInString(f.Email) > MaxEmailLen || !validEmail(f.Email) {
			v.Add("email", "Enter a valid email address.")
		}
	}

	if f.Password1 != "" && f.Password2 != "" {
		if f.Password1 != f.Password2 {
			v.Add("password2", "The two password fields didn't match.")
		} else {
			for _, problem := range CheckPassword(f.Password2, f.Username, f.Email, f.FirstName, f.LastName) {
				v.Add("password2", problem)
			}
		}
	}

	return v
}

// Signup registers a new account and logs it in.
//
// If current is not nil, the form is ignored and the client is redirected to the listing.
// On validation errors, the passwords in form are cleared.
func (c *CoreDB) Signup(ctx context.Context, current *Account, form *SignupForm) (Result, error) {

	if current != nil {
		return Result{Redirect: HomePath}, nil
	}

	form.Clean()

	var result Result
	var invalid = func(v *ValidationError) (Result, error) {
		form.Password1 = ""
		form.Password2 = ""
		result.Invalid(v)
		return result, nil
	}

	var v = form.validate()

	if !v.Has("username") {
		taken, err := c.UsernameExists(ctx, form.Username)
		if err != nil {
			return Result{}, fmt.Errorf("checking username: %w", err)
		}
		if taken {
			v.Add("username", "A user with that username already exists.")
		}
	}

	if !v.Has("email") {
		taken, err := c.EmailExists(ctx, form.Email)
		if err != nil {
			return Result{}, fmt.Errorf("checking email: %w", err)
		}
		if taken {
			v.Add("email", "This email is already in use.")
		}
	}

	if !v.Empty() {
		return invalid(v)
	}

	var account = &Account{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Joined:    c.now(),
	}

	if err := c.Create(ctx, account, form.Password1); err != nil {
		if errors.Is(err, ErrUnique) {
			// lost a race against a concurrent signup
			v.Add("username", "A user with that username or email already exists.")
			return invalid(v)
		}
		return Result{}, fmt.Errorf("creating account: %w", err)
	}

	c.log().Infow("account created", "account_id", account.ID, "username", account.Username)

	result.Session = account
	result.Success("Account created successfully! Welcome!")
	result.Redirect = HomePath
	return result, nil
}

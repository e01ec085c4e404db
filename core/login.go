package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// LoginForm contains the submitted credentials. Identifier is a username or an email address.
type LoginForm struct {
	Identifier string
	Password   string
}

// Login verifies the credentials and establishes a session.
//
// Unknown identifiers and wrong passwords are not distinguished in the result.
func (c *CoreDB) Login(ctx context.Context, current *Account, form *LoginForm) (Result, error) {

	if current != nil {
		return Result{Redirect: HomePath}, nil
	}

	form.Identifier = strings.TrimSpace(form.Identifier)
	var password = form.Password
	form.Password = "" // never rendered again

	var result Result

	if form.Identifier == "" || password == "" {
		var v = &ValidationError{}
		if form.Identifier == "" {
			v.Add("username", "This field is required.")
		}
		if password == "" {
			v.Add("password", "This field is required.")
		}
		result.Invalid(v)
		return result, nil
	}

	account, err := c.Authenticate(ctx, form.Identifier, password)
	switch {
	case errors.Is(err, ErrAuth):
		c.log().Infow("login failed", "identifier", form.Identifier)
		result.Err = ErrAuth
		result.Danger("Invalid username or password.")
		return result, nil
	case err != nil:
		return Result{}, fmt.Errorf("authenticating: %w", err)
	}

	result.Session = account
	result.Success("Logged in successfully!")
	result.Redirect = HomePath
	return result, nil
}

// Logout ends the session, if any, and redirects to the listing.
func (c *CoreDB) Logout(ctx context.Context, current *Account) Result {
	if current != nil {
		c.log().Infow("logout", "account_id", current.ID)
	}
	var result = Result{
		EndSession: true,
		Redirect:   HomePath,
	}
	result.Success("Logged out successfully!")
	return result
}

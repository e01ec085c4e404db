package core

import (
	"fmt"
	"net/url"
)

// Notification styles, named after bootstrap alert classes.
const (
	Danger  = "danger"
	Info    = "info"
	Success = "success"
)

// A Notification is a status message which is shown once.
type Notification struct {
	Message string
	Style   string
}

// Result is returned by every workflow. The caller turns it into a redirect or a rendered page.
type Result struct {
	Redirect      string         // if not empty, the client is sent there
	Notifications []Notification // status messages for the next rendered page
	Session       *Account       // if not nil, an authenticated session is established for it
	EndSession    bool
	Err           error // recoverable failure: *ValidationError, ErrAuth or ErrNotFound
}

func (r *Result) Danger(message string) {
	r.Notifications = append(r.Notifications, Notification{message, Danger})
}

func (r *Result) Success(format string, args ...interface{}) {
	r.Notifications = append(r.Notifications, Notification{fmt.Sprintf(format, args...), Success})
}

// Invalid sets Err to v and adds a danger notification for each field error.
func (r *Result) Invalid(v *ValidationError) {
	r.Err = v
	for _, fe := range v.Fields {
		r.Danger(fe.String())
	}
}

// Paths which workflows redirect to.
const (
	HomePath  = "/"
	LoginPath = "/login/"
)

// RedirectToLogin sends the client to the login page, which returns to next afterwards.
func RedirectToLogin(next string) Result {
	return Result{
		Redirect: LoginPath + "?next=" + url.QueryEscape(next),
	}
}

package frontend

import (
	"encoding/gob"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/wansing/blog/core"
	"golang.org/x/text/language"
)

func init() {
	gob.Register([]core.Notification{}) // required for storing notifications in a session
}

var langMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish, // default
	language.German,
})

var monthNamesDe = strings.NewReplacer(
	"January", "Januar",
	"February", "Februar",
	"March", "März",
	"May", "Mai",
	"June", "Juni",
	"July", "Juli",
	"October", "Oktober",
	"December", "Dezember",
)

// A Request is created for every handled HTTP request. Templates get it as their data.
type Request struct {
	User   *core.Account // nil if anonymous
	Prefix string        // with trailing slash

	f       *Frontend // unexported, so it can't be accessed in templates
	writer  http.ResponseWriter
	request *http.Request

	language      language.Tag
	statusWritten bool
}

// newRequest loads the logged-in account from the session.
func (f *Frontend) newRequest(w http.ResponseWriter, r *http.Request) (*Request, error) {

	var req = &Request{
		Prefix:  f.Prefix + "/",
		f:       f,
		writer:  w,
		request: r,
	}

	req.language = matchLanguage(r)

	if uid := f.Sessions.GetInt(r.Context(), "uid"); uid != 0 {
		account, err := f.DB.GetAccount(r.Context(), uid)
		switch {
		case err == nil:
			req.User = account
		case core.IsNotFound(err):
			f.Sessions.Remove(r.Context(), "uid") // account has been deleted
		default:
			return nil, fmt.Errorf("getting account %d: %w", uid, err)
		}
	}

	return req, nil
}

func matchLanguage(r *http.Request) language.Tag {
	tag, _ := language.MatchStrings(langMatcher, r.Header.Get("Accept-Language"))
	return tag
}

func (req *Request) LoggedIn() bool {
	return req.User != nil
}

// SeeOther redirects the client to an absolute path.
func (req *Request) SeeOther(path string) {
	if req.statusWritten {
		return
	}
	http.Redirect(req.writer, req.request, path, http.StatusSeeOther)
	req.statusWritten = true
}

// apply carries out the session changes, notifications and redirect of a workflow result.
func (req *Request) apply(result core.Result) error {

	var ctx = req.request.Context()
	var sm = req.f.Sessions

	if result.EndSession {
		if err := sm.RenewToken(ctx); err != nil {
			return err
		}
		sm.Remove(ctx, "uid")
		req.User = nil
	}

	if result.Session != nil {
		if err := sm.RenewToken(ctx); err != nil { // prevents session fixation
			return err
		}
		sm.Put(ctx, "uid", result.Session.ID)
		req.User = result.Session
	}

	if len(result.Notifications) > 0 {
		notifications, _ := sm.Get(ctx, "notifications").([]core.Notification)
		sm.Put(ctx, "notifications", append(notifications, result.Notifications...))
	}

	if result.Redirect != "" {
		req.SeeOther(result.Redirect)
	}

	return nil
}

// RenderNotifications removes all notifications from the session and renders them.
func (req *Request) RenderNotifications() template.HTML {
	notifications, _ := req.f.Sessions.Pop(req.request.Context(), "notifications").([]core.Notification)
	var b strings.Builder
	for _, n := range notifications {
		b.WriteString(`<div class="alert alert-` + template.HTMLEscapeString(n.Style) + `" role="alert">` + template.HTMLEscapeString(n.Message) + `</div>`)
	}
	return template.HTML(b.String())
}

// FormatDate formats a timestamp according to the Accept-Language header.
func (req *Request) FormatDate(t time.Time) string {
	b, _ := req.language.Base()
	switch b.String() {
	case "de":
		return monthNamesDe.Replace(t.Format("2. January 2006 15:04 Uhr"))
	default:
		return t.Format("January 2, 2006 3:04 PM")
	}
}

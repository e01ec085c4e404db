package frontend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/jmoiron/sqlx"
	"github.com/julienschmidt/httprouter"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wansing/blog/core"
	"github.com/wansing/blog/middleware"
	"github.com/wansing/blog/sessions"
	"github.com/wansing/blog/sqldb"
	"github.com/wansing/blog/util"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testSite struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
	db     *core.CoreDB
	prefix string
}

func newTestSite(t *testing.T, configure func(*Frontend)) *testSite {
	t.Helper()

	sqlDB, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, sqldb.Migrate(context.Background(), sqlDB))

	accounts := sqldb.NewAccountDB(sqlDB)
	accounts.Cost = bcrypt.MinCost

	db := &core.CoreDB{
		AccountDB: accounts,
		PostDB:    sqldb.NewPostDB(sqlDB),
		ProfileDB: sqldb.NewProfileDB(sqlDB),
		Log:       zap.NewNop().Sugar(),
	}

	f := &Frontend{
		DB:       db,
		Sessions: sessions.NewManager(memstore.New(), sessions.Config{}),
		Log:      zap.NewNop().Sugar(),
		Ping:     sqlDB.PingContext,
	}
	if configure != nil {
		configure(f)
	}
	f.Sessions.Cookie.Path = f.Prefix + "/"

	server := httptest.NewServer(util.StripPrefix(f.Prefix, f.Handler()))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testSite{
		t:      t,
		server: server,
		db:     db,
		prefix: f.Prefix,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (s *testSite) url(path string) string {
	return s.server.URL + s.prefix + path
}

func (s *testSite) get(path string) (int, string, http.Header) {
	s.t.Helper()
	resp, err := s.client.Get(s.url(path))
	require.NoError(s.t, err)
	return read(s.t, resp)
}

func (s *testSite) post(path string, form url.Values) (int, string, http.Header) {
	s.t.Helper()
	resp, err := s.client.PostForm(s.url(path), form)
	require.NoError(s.t, err)
	return read(s.t, resp)
}

func read(t *testing.T, resp *http.Response) (int, string, http.Header) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func (s *testSite) sessionCookie() string {
	u, _ := url.Parse(s.url("/"))
	for _, c := range s.client.Jar.Cookies(u) {
		if c.Name == "blog_session" {
			return c.Value
		}
	}
	return ""
}

func (s *testSite) createAccount(username string) *core.Account {
	s.t.Helper()
	a := &core.Account{Username: username, Email: username + "@example.com", FirstName: "First", LastName: "Last", Joined: time.Now()}
	require.NoError(s.t, s.db.AccountDB.Create(context.Background(), a, "s3cure-Passphrase"))
	return a
}

func (s *testSite) login(username string) {
	s.t.Helper()
	status, _, header := s.post("/login/", url.Values{"username": {username}, "password": {"s3cure-Passphrase"}})
	require.Equal(s.t, http.StatusSeeOther, status)
	require.Equal(s.t, s.prefix+"/", header.Get("Location"))
}

func signupValues() url.Values {
	return url.Values{
		"first_name": {"Alice"},
		"last_name":  {"Smith"},
		"username":   {"alice"},
		"email":      {"alice@example.com"},
		"password1":  {"s3cure-Passphrase"},
		"password2":  {"s3cure-Passphrase"},
	}
}

func TestSignupLogoutLogin(t *testing.T) {
	s := newTestSite(t, nil)

	status, body, _ := s.get("/signup/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<h1>Sign Up</h1>")

	status, _, header := s.post("/signup/", signupValues())
	require.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	_, body, _ = s.get("/")
	assert.Contains(t, body, "Account created successfully! Welcome!")
	assert.Contains(t, body, "Logout")

	// notifications are shown once
	_, body, _ = s.get("/")
	assert.NotContains(t, body, "Account created successfully!")

	// logged in users are sent home
	status, _, header = s.get("/signup/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))
	status, _, _ = s.get("/login/")
	assert.Equal(t, http.StatusSeeOther, status)

	status, _, header = s.get("/logout/")
	require.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	_, body, _ = s.get("/")
	assert.Contains(t, body, "Logged out successfully!")
	assert.Contains(t, body, "Log in")

	status, body, _ = s.post("/login/", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Invalid username or password.")
	assert.Contains(t, body, `value="alice"`)
	assert.NotContains(t, body, "wrong")

	before := s.sessionCookie()
	s.login("alice@example.com")
	assert.NotEqual(t, before, s.sessionCookie(), "session token is renewed")

	_, body, _ = s.get("/")
	assert.Contains(t, body, "Logged in successfully!")
}

func TestSignupInvalid(t *testing.T) {
	s := newTestSite(t, nil)
	s.createAccount("alice")

	values := signupValues()
	values.Set("email", "other@example.com")
	values.Set("password2", "something-else")

	status, body, _ := s.post("/signup/", values)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "username: A user with that username already exists.")
	assert.Contains(t, body, "password2: The two password fields didn&#39;t match.")
	assert.Contains(t, body, `value="other@example.com"`)
	assert.NotContains(t, body, "s3cure-Passphrase")
	assert.NotContains(t, body, "Logout")
}

func TestCreateAndViewPost(t *testing.T) {
	s := newTestSite(t, nil)
	s.createAccount("bob")

	status, _, header := s.get("/create/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login/?next=%2Fcreate%2F", header.Get("Location"))

	status, _, header = s.post("/create/", url.Values{"title": {"Hello"}, "content": {"c"}})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login/?next=%2Fcreate%2F", header.Get("Location"))

	_, body, _ := s.get("/")
	assert.Contains(t, body, "No blog posts yet.")

	s.login("bob")

	status, body, _ = s.get("/create/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<h1>Create Post</h1>")

	status, _, header = s.post("/create/", url.Values{"title": {"Hello"}, "excerpt": {""}, "content": {"Hello *world*"}})
	require.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	_, body, _ = s.get("/")
	assert.Contains(t, body, "Blog post created successfully!")
	assert.Contains(t, body, `<a href="post/1/">Hello</a>`)
	assert.Contains(t, body, "Hello *world*...")

	status, body, _ = s.post("/create/", url.Values{"title": {"Hello"}, "content": {"again"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "title: Blog post with this Title already exists.")
	assert.Contains(t, body, ">again</textarea>")

	status, body, _ = s.get("/post/1/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<em>world</em>")
	assert.Contains(t, body, "· 1 views")

	_, body, _ = s.get("/post/1/")
	assert.Contains(t, body, "· 2 views")

	status, _, header = s.get("/post/999/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))
	_, body, _ = s.get("/")
	assert.Contains(t, body, "Blog post not found.")

	status, _, header = s.get("/post/0/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))
	_, body, _ = s.get("/")
	assert.Contains(t, body, "Blog post not found.")

	status, _, _ = s.get("/post/abc/")
	assert.Equal(t, http.StatusNotFound, status)
	status, _, _ = s.get("/post/-1/")
	assert.Equal(t, http.StatusNotFound, status)

	s.get("/logout/")
	status, _, header = s.get("/post/1/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login/?next=%2Fpost%2F1%2F", header.Get("Location"))

	status, _, header = s.get("/post/0/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/login/?next=%2Fpost%2F0%2F", header.Get("Location"))

	// anonymous requests don't count
	post, err := s.db.PostDB.GetPublishedPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, post.Views)
}

func TestAbout(t *testing.T) {
	s := newTestSite(t, nil)

	status, body, header := s.get("/about/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<h1>About</h1>")
	assert.Equal(t, "nosniff", header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, header.Get("X-Request-ID"))

	status, _, header = s.get("/about")
	assert.Equal(t, http.StatusMovedPermanently, status)
	assert.Equal(t, "/about/", header.Get("Location"))
}

func TestHealthzAndMetrics(t *testing.T) {
	s := newTestSite(t, nil)

	status, body, _ := s.get("/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)

	s.get("/")
	status, body, _ = s.get("/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "blog_http_requests_total")
}

func TestHealthz_DatabaseDown(t *testing.T) {
	s := newTestSite(t, func(f *Frontend) {
		f.Ping = func(context.Context) error { return errors.New("connection refused") }
	})

	status, _, _ := s.get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestRateLimit(t *testing.T) {
	s := newTestSite(t, func(f *Frontend) {
		f.Limiter = middleware.NewIPRateLimiter(1, 2)
	})

	wrong := url.Values{"username": {"alice"}, "password": {"wrong"}}

	status, _, _ := s.post("/login/", wrong)
	assert.Equal(t, http.StatusOK, status)
	status, _, _ = s.post("/login/", wrong)
	assert.Equal(t, http.StatusOK, status)
	status, body, _ := s.post("/login/", wrong)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Contains(t, body, "Too many requests")

	// GET is not limited
	status, _, _ = s.get("/login/")
	assert.Equal(t, http.StatusOK, status)
}

func TestPrefix(t *testing.T) {
	s := newTestSite(t, func(f *Frontend) {
		f.Prefix = "/blog"
	})

	status, body, _ := s.get("/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `<base href="/blog/">`)

	s.createAccount("carol")
	s.login("carol") // asserts the prefixed redirect

	status, _, header := s.get("/logout/")
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/blog/", header.Get("Location"))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

	for lang, want := range map[string]string{
		"":               "March 5, 2024 2:07 PM",
		"en-US,en;q=0.8": "March 5, 2024 2:07 PM",
		"de-DE,de;q=0.9": "5. März 2024 14:07 Uhr",
		"fr-FR":          "March 5, 2024 2:07 PM",
	} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if lang != "" {
			r.Header.Set("Accept-Language", lang)
		}
		req := &Request{}
		req.language = matchLanguage(r)
		assert.Equal(t, want, req.FormatDate(ts), lang)
	}
}

func TestErrorPage(t *testing.T) {
	f := &Frontend{
		Sessions: sessions.NewManager(memstore.New(), sessions.Config{}),
		Log:      zap.NewNop().Sugar(),
	}

	handle := f.middleware(func(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {
		return errors.New("disk on fire")
	})

	rr := httptest.NewRecorder()
	f.Sessions.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle(w, r, nil)
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal server error")
	assert.False(t, strings.Contains(rr.Body.String(), "disk on fire"))
}

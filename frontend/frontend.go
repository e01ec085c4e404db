// Package frontend serves the blog website.
package frontend

import (
	"context"
	"html/template"
	"net/http"

	"github.com/alexedwards/scs/v2"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wansing/blog/core"
	"github.com/wansing/blog/metrics"
	"github.com/wansing/blog/middleware"
	"go.uber.org/zap"
)

type Frontend struct {
	DB       *core.CoreDB
	Sessions *scs.SessionManager
	Log      *zap.SugaredLogger
	Limiter  *middleware.IPRateLimiter    // limits signup and login submissions, may be nil
	Ping     func(context.Context) error // checks the database for /healthz, may be nil
	Prefix   string                      // base path without trailing slash, see util.StripPrefix
	HSTS     bool
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, req *Request, params httprouter.Params) error

func (f *Frontend) middleware(fn handlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {

		req, err := f.newRequest(w, r)
		if err == nil {
			err = fn(w, r, req, params)
		}
		if err == nil {
			return
		}

		f.Log.Errorw("handling request",
			"request_id", middleware.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)

		if req == nil {
			req = &Request{Prefix: f.Prefix + "/", f: f, writer: w, request: r}
		}
		if req.statusWritten {
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		errorTmpl.Execute(w, struct {
			*Request
			RequestID string
		}{
			Request:   req,
			RequestID: middleware.RequestID(r.Context()),
		})
	}
}

// limited answers POST requests with status 429 if the client has exceeded its rate.
func (f *Frontend) limited(handle httprouter.Handle) httprouter.Handle {
	if f.Limiter == nil {
		return handle
	}
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		if r.Method == http.MethodPost && !f.Limiter.Allow(r) {
			f.Log.Infow("rate limited", "request_id", middleware.RequestID(r.Context()), "path", r.URL.Path)
			http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
			return
		}
		handle(w, r, params)
	}
}

func (f *Frontend) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if f.Ping != nil {
		if err := f.Ping(r.Context()); err != nil {
			f.Log.Errorw("health check", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Router returns the routes without middlewares.
func (f *Frontend) Router() *httprouter.Router {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	GETAndPOST("/signup/", f.limited(f.middleware(signup)))
	GETAndPOST("/login/", f.limited(f.middleware(login)))
	router.GET("/logout/", f.middleware(logout))

	router.GET("/", f.middleware(home))
	router.GET("/post/:id/", f.middleware(detail))
	GETAndPOST("/create/", f.middleware(create))
	router.GET("/about/", f.middleware(about))

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.GET("/healthz", f.healthz)

	return router
}

// Handler returns the router wrapped in all middlewares and the session manager.
func (f *Frontend) Handler() http.Handler {
	var h http.Handler = f.Router()
	h = f.Sessions.LoadAndSave(h)
	h = chimw.Compress(5)(h)
	h = middleware.Prometheus(h)
	h = middleware.SecurityHeaders(f.HSTS)(h)
	h = middleware.Recoverer(f.Log)(h)
	h = middleware.RequestLog(f.Log)(h)
	h = chimw.RealIP(h)
	return h
}

// outcome classifies a workflow result for metrics.
func outcome(result core.Result) string {
	switch {
	case result.Err != nil:
		return metrics.Invalid
	case result.Session != nil || result.EndSession:
		return metrics.Success
	case result.Redirect != "" && len(result.Notifications) == 0:
		return metrics.Redirect
	default:
		return metrics.Success
	}
}

// tmpl clones the base template and defines its title and content.
func tmpl(title, content string) *template.Template {
	t := template.Must(baseTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "title" }}` + title + `{{ end }}{{ define "content" }}` + content + `{{ end }}`))
	return t
}

var errorTmpl = tmpl("Error", `
	<h1>Internal server error</h1>
	<div class="alert alert-danger" role="alert">
		Something went wrong. {{ with .RequestID }}Request id: <code>{{ . }}</code>{{ end }}
	</div>`)

var baseTmpl = template.Must(template.New("base").Parse(`<!DOCTYPE html>
<html>
	<head>
		<base href="{{ .Prefix }}">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>{{ block "title" . }}Blog{{ end }}</title>
		<style>
			body {
				font-family: system-ui, sans-serif;
				margin: 0;
				color: #212529;
			}
			nav {
				background-color: #f4f5f6;
				padding: 0.6rem 1rem;
			}
			nav a {
				margin-right: 1rem;
			}
			main {
				max-width: 48rem;
				margin: auto;
				padding: 1rem;
			}
			.alert {
				border: 1px solid transparent;
				border-radius: .25rem;
				padding: .6rem 1rem;
				margin: 1rem 0;
			}
			.alert-danger {
				background-color: #f8d7da;
				color: #721c24;
			}
			.alert-info {
				background-color: #d1ecf1;
				color: #0c5460;
			}
			.alert-success {
				background-color: #d4edda;
				color: #155724;
			}
			.meta {
				color: #6c757d;
				font-size: 0.9rem;
			}
			label {
				display: block;
				margin-top: 0.8rem;
			}
			input, textarea {
				width: 100%;
				box-sizing: border-box;
			}
			textarea {
				tab-size: 4;
				-moz-tab-size: 4;
			}
			.avatar {
				width: 3rem;
				height: 3rem;
				border-radius: 50%;
			}
		</style>
	</head>
	<body>
		<nav>
			<a href="./">Blog</a>
			<a href="about/">About</a>
			{{ if .LoggedIn }}
				<a href="create/">New post</a>
				<span>{{ .User.Name }}</span>
				<a href="logout/">Logout</a>
			{{ else }}
				<a href="login/">Log in</a>
				<a href="signup/">Sign up</a>
			{{ end }}
		</nav>
		<main>
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</main>
	</body>
</html>`))

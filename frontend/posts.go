package frontend

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/blog/core"
	"github.com/wansing/blog/markup"
	"github.com/wansing/blog/metrics"
)

var homeTmpl = tmpl("Blog", `<h1>Blog</h1>
	{{ range .Posts }}
		<article>
			<h2><a href="post/{{ .ID }}/">{{ .Title }}</a></h2>
			<p class="meta">by {{ .AuthorName }} · {{ $.FormatDate .Created }} · {{ .Views }} views</p>
			<p>{{ .Summary }}</p>
		</article>
	{{ else }}
		<p>No blog posts yet.</p>
	{{ end }}`)

type homeData struct {
	*Request
	Posts []*core.Post
}

func home(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {
	posts, err := req.f.DB.ListPosts(r.Context())
	if err != nil {
		return err
	}
	return homeTmpl.Execute(w, &homeData{
		Request: req,
		Posts:   posts,
	})
}

var detailTmpl = tmpl("{{ .Post.Title }}", `<article>
		<h1>{{ .Post.Title }}</h1>
		<p class="meta">
			by {{ .Post.AuthorName }} · {{ .FormatDate .Post.Created }}
			{{ if ne .Post.Updated.Unix .Post.Created.Unix }}· updated {{ .FormatDate .Post.Updated }}{{ end }}
			· {{ .Post.Views }} views
		</p>
		{{ .Content }}
	</article>
	{{ with .Post.Profile }}
		{{ if or .Bio .AvatarURL }}
			<aside class="meta">
				{{ if .AvatarURL }}<img class="avatar" src="{{ .AvatarURL }}" alt="">{{ end }}
				{{ .Bio }}
			</aside>
		{{ end }}
	{{ end }}
	<p><a href="./">Back to all posts</a></p>`)

type detailData struct {
	*Request
	Post    *core.PostView
	Content template.HTML
}

func detail(w http.ResponseWriter, r *http.Request, req *Request, params httprouter.Params) error {

	// unknown ids are handled by ViewPost
	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil || id < 0 {
		http.NotFound(w, r)
		req.statusWritten = true
		return nil
	}

	view, result, err := req.f.DB.ViewPost(r.Context(), req.User, id)
	if err != nil {
		metrics.RecordWorkflow("view", metrics.Failure)
		return err
	}
	metrics.RecordWorkflow("view", outcome(result))
	if err := req.apply(result); err != nil {
		return err
	}
	if view == nil {
		return nil
	}

	return detailTmpl.Execute(w, &detailData{
		Request: req,
		Post:    view,
		Content: markup.Render(view.Content),
	})
}

var createTmpl = tmpl("Create Post", `<h1>Create Post</h1>
	<form method="post">
		<label>Title
			<input type="text" name="title" value="{{ .Form.Title }}" maxlength="200" required autofocus>
		</label>
		<label>Excerpt (optional)
			<input type="text" name="excerpt" value="{{ .Form.Excerpt }}" maxlength="300">
		</label>
		<label>Content (CommonMark)
			<textarea name="content" rows="16" required>{{ .Form.Content }}</textarea>
		</label>
		<p>
			<button type="submit">Publish</button>
		</p>
	</form>`)

type createData struct {
	*Request
	Form *core.PostForm
}

func create(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {

	var form = &core.PostForm{}

	switch {
	case !req.LoggedIn():
		return req.apply(core.RedirectToLogin(core.CreatePath))
	case r.Method == http.MethodPost:
		form = &core.PostForm{
			Title:   r.PostFormValue("title"),
			Excerpt: r.PostFormValue("excerpt"),
			Content: r.PostFormValue("content"),
		}
		result, err := req.f.DB.CreatePost(r.Context(), req.User, form)
		if err != nil {
			metrics.RecordWorkflow("create", metrics.Failure)
			return err
		}
		metrics.RecordWorkflow("create", outcome(result))
		if err := req.apply(result); err != nil {
			return err
		}
		if req.statusWritten {
			return nil
		}
	}

	return createTmpl.Execute(w, &createData{
		Request: req,
		Form:    form,
	})
}

var aboutTmpl = tmpl("About", `<h1>About</h1>
	<p>This is a small blog where everyone can sign up and write posts.</p>
	<p>Posts are written in <a href="https://commonmark.org/help/">CommonMark</a>. Reading a post requires an account.</p>`)

func about(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {
	return aboutTmpl.Execute(w, req)
}

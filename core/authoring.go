package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const CreatePath = "/create/"

// PostForm contains the submitted fields of a new post.
type PostForm struct {
	Title   string
	Excerpt string
	Content string
}

func (f *PostForm) validate() *ValidationError {

	var v = &ValidationError{}

	f.Title = strings.TrimSpace(f.Title)
	f.Excerpt = strings.TrimSpace(f.Excerpt)

	if f.Title == "" {
		v.Add("title", "This field is required.")
	} else if utf8.RuneCountInString(f.Title) > MaxTitleLen {
		v.Add("title", tooLong(MaxTitleLen, f.Title))
	}

	if utf8.RuneCountInString(f.Excerpt) > MaxExcerptLen {
		v.Add("excerpt", tooLong(MaxExcerptLen, f.Excerpt))
	}

	if strings.TrimSpace(f.Content) == "" {
		v.Add("content", "This field is required.")
	}

	return v
}

// CreatePost stores a new published post written by current.
// Anonymous callers are redirected to the login page.
func (c *CoreDB) CreatePost(ctx context.Context, current *Account, form *PostForm) (Result, error) {

	if current == nil {
		return RedirectToLogin(CreatePath), nil
	}

	var result Result

	var v = form.validate()
	if !v.Has("title") {
		taken, err := c.TitleExists(ctx, form.Title)
		if err != nil {
			return Result{}, fmt.Errorf("checking title: %w", err)
		}
		if taken {
			v.Add("title", "Blog post with this Title already exists.")
		}
	}

	if !v.Empty() {
		result.Invalid(v)
		return result, nil
	}

	var now = c.now()
	var post = &Post{
		AuthorID:  current.ID,
		Title:     form.Title,
		Content:   form.Content,
		Excerpt:   form.Excerpt,
		Created:   now,
		Updated:   now,
		Published: true,
	}

	if err := c.PostDB.CreatePost(ctx, post); err != nil {
		if errors.Is(err, ErrUnique) {
			v.Add("title", "Blog post with this Title already exists.")
			result.Invalid(v)
			return result, nil
		}
		return Result{}, fmt.Errorf("creating post: %w", err)
	}

	c.log().Infow("post created", "post_id", post.ID, "author_id", current.ID)

	result.Success("Blog post created successfully!")
	result.Redirect = HomePath
	return result, nil
}

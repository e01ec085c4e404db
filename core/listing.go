package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// PostPath returns the path of the detail page of a post.
func PostPath(id int) string {
	return "/post/" + strconv.Itoa(id) + "/"
}

// ListPosts returns all published posts, newest first. It never returns a nil slice without an error.
func (c *CoreDB) ListPosts(ctx context.Context) ([]*Post, error) {
	posts, err := c.GetPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	if posts == nil {
		posts = []*Post{}
	}
	return posts, nil
}

// A PostView is a post together with the profile of its author.
type PostView struct {
	*Post
	Profile *Profile // nil if the author has no profile
}

// ViewPost counts a view of a published post and returns it.
// Anonymous callers are redirected to the login page.
// If the post does not exist or is not published, the client is sent back to the listing.
func (c *CoreDB) ViewPost(ctx context.Context, current *Account, id int) (*PostView, Result, error) {

	if current == nil {
		return nil, RedirectToLogin(PostPath(id)), nil
	}

	var result Result

	post, err := c.GetPublishedPost(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		result.Err = ErrNotFound
		result.Danger("Blog post not found.")
		result.Redirect = HomePath
		return nil, result, nil
	case err != nil:
		return nil, Result{}, fmt.Errorf("getting post %d: %w", id, err)
	}

	if err := c.IncrementViews(ctx, post.ID); err != nil {
		return nil, Result{}, fmt.Errorf("counting view of post %d: %w", id, err)
	}
	post.Views++

	var view = &PostView{Post: post}

	profile, err := c.GetProfile(ctx, post.AuthorID)
	switch {
	case err == nil:
		view.Profile = profile
	case !errors.Is(err, ErrNotFound):
		return nil, Result{}, fmt.Errorf("getting profile of account %d: %w", post.AuthorID, err)
	}

	return view, result, nil
}

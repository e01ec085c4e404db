//go:generate mockgen -source=post.go -destination=post_mock.go -package=core

package core

import (
	"context"
	"time"
)

const (
	MaxTitleLen   = 200
	MaxExcerptLen = 300
)

// A Post is a blog entry.
type Post struct {
	ID        int
	AuthorID  int
	Title     string
	Content   string
	Excerpt   string
	Created   time.Time
	Updated   time.Time
	Published bool
	Views     int

	// joined from the account on read
	AuthorUsername  string
	AuthorFirstName string
	AuthorLastName  string
}

// AuthorName returns the full name of the author, or the username.
func (p *Post) AuthorName() string {
	var a = Account{
		Username:  p.AuthorUsername,
		FirstName: p.AuthorFirstName,
		LastName:  p.AuthorLastName,
	}
	return a.Name()
}

// Summary returns the excerpt, or the first 300 characters of the content plus an ellipsis.
func (p *Post) Summary() string {
	if p.Excerpt != "" {
		return p.Excerpt
	}
	return truncRunes(p.Content, MaxExcerptLen) + "..."
}

func truncRunes(s string, n int) string {
	var count = 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// PostDB is the post store.
//
// CreatePost sets p.ID and returns an error wrapping ErrUnique if the title is taken.
// GetPublishedPost returns ErrNotFound if there is no published post with the given id.
// IncrementViews adds one to the view counter atomically and refreshes the updated timestamp.
type PostDB interface {
	CreatePost(ctx context.Context, p *Post) error
	GetAllPosts(ctx context.Context) ([]*Post, error)
	GetPublishedPost(ctx context.Context, id int) (*Post, error)
	GetPublishedPosts(ctx context.Context) ([]*Post, error)
	IncrementViews(ctx context.Context, id int) error
	TitleExists(ctx context.Context, title string) (bool, error)
}

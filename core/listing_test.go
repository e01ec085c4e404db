package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wansing/blog/core"
)

func TestListPosts_Empty(t *testing.T) {
	f := newFixture(t)

	f.posts.EXPECT().GetPublishedPosts(gomock.Any()).Return(nil, nil)

	posts, err := f.db.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestListPosts_KeepsStoreOrder(t *testing.T) {
	f := newFixture(t)

	newer := &core.Post{ID: 2, Title: "newer"}
	older := &core.Post{ID: 1, Title: "older"}
	f.posts.EXPECT().GetPublishedPosts(gomock.Any()).Return([]*core.Post{newer, older}, nil)

	posts, err := f.db.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*core.Post{newer, older}, posts)
}

func TestViewPost_Anonymous(t *testing.T) {
	f := newFixture(t)

	view, result, err := f.db.ViewPost(context.Background(), nil, 4)
	require.NoError(t, err)

	assert.Nil(t, view)
	assert.Equal(t, "/login/?next=%2Fpost%2F4%2F", result.Redirect)
}

func TestViewPost_NotFound(t *testing.T) {
	f := newFixture(t)

	f.posts.EXPECT().GetPublishedPost(gomock.Any(), 99).Return(nil, core.ErrNotFound)
	// IncrementViews must not be called

	view, result, err := f.db.ViewPost(context.Background(), &core.Account{ID: 1}, 99)
	require.NoError(t, err)

	assert.Nil(t, view)
	assert.True(t, errors.Is(result.Err, core.ErrNotFound))
	assert.Equal(t, core.HomePath, result.Redirect)
	assert.Equal(t, []core.Notification{{Message: "Blog post not found.", Style: core.Danger}}, result.Notifications)
}

func TestViewPost_CountsEachView(t *testing.T) {
	f := newFixture(t)

	views := 0
	f.posts.EXPECT().GetPublishedPost(gomock.Any(), 4).
		DoAndReturn(func(context.Context, int) (*core.Post, error) {
			return &core.Post{ID: 4, AuthorID: 2, Title: "t", Published: true, Views: views}, nil
		}).Times(2)
	f.posts.EXPECT().IncrementViews(gomock.Any(), 4).
		DoAndReturn(func(context.Context, int) error {
			views++
			return nil
		}).Times(2)
	f.profiles.EXPECT().GetProfile(gomock.Any(), 2).Return(&core.Profile{AccountID: 2, Bio: "hi"}, nil).Times(2)

	for i := 1; i <= 2; i++ {
		view, result, err := f.db.ViewPost(context.Background(), &core.Account{ID: 1}, 4)
		require.NoError(t, err)
		assert.NoError(t, result.Err)
		assert.Empty(t, result.Redirect)
		require.NotNil(t, view)
		assert.Equal(t, i, view.Views)
		assert.Equal(t, "hi", view.Profile.Bio)
	}

	assert.Equal(t, 2, views)
}

func TestViewPost_MissingProfile(t *testing.T) {
	f := newFixture(t)

	f.posts.EXPECT().GetPublishedPost(gomock.Any(), 4).Return(&core.Post{ID: 4, AuthorID: 2}, nil)
	f.posts.EXPECT().IncrementViews(gomock.Any(), 4).Return(nil)
	f.profiles.EXPECT().GetProfile(gomock.Any(), 2).Return(nil, core.ErrNotFound)

	view, _, err := f.db.ViewPost(context.Background(), &core.Account{ID: 1}, 4)
	require.NoError(t, err)
	assert.Nil(t, view.Profile)
}

func TestPost_Summary(t *testing.T) {
	long := strings.Repeat("é", 350)

	tests := []struct {
		name string
		post core.Post
		want string
	}{
		{"excerpt", core.Post{Excerpt: "teaser", Content: "body"}, "teaser"},
		{"short content", core.Post{Content: "body"}, "body..."},
		{"long content", core.Post{Content: long}, strings.Repeat("é", 300) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.post.Summary())
		})
	}
}

func TestAccount_Name(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&core.Account{Username: "ada", FirstName: "Ada", LastName: "Lovelace"}).Name())
	assert.Equal(t, "Ada", (&core.Account{Username: "ada", FirstName: "Ada"}).Name())
	assert.Equal(t, "ada", (&core.Account{Username: "ada"}).Name())
}

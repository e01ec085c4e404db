package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wansing/blog/core"
)

type postRow struct {
	ID              int    `db:"id"`
	AuthorID        int    `db:"author_id"`
	Title           string `db:"title"`
	Content         string `db:"content"`
	Excerpt         string `db:"excerpt"`
	Created         int64  `db:"created"`
	Updated         int64  `db:"updated"`
	Published       bool   `db:"published"`
	Views           int    `db:"views"`
	AuthorUsername  string `db:"author_username"`
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
}

func (r *postRow) post() *core.Post {
	return &core.Post{
		ID:              r.ID,
		AuthorID:        r.AuthorID,
		Title:           r.Title,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		Created:         fromUnix(r.Created),
		Updated:         fromUnix(r.Updated),
		Published:       r.Published,
		Views:           r.Views,
		AuthorUsername:  r.AuthorUsername,
		AuthorFirstName: r.AuthorFirstName,
		AuthorLastName:  r.AuthorLastName,
	}
}

const selectPosts = `SELECT post.id, post.author_id, post.title, post.content, post.excerpt, post.created, post.updated, post.published, post.views,
	account.username AS author_username, account.first_name AS author_first_name, account.last_name AS author_last_name
	FROM post JOIN account ON account.id = post.author_id`

// newest first, ties broken by id
const orderPosts = " ORDER BY post.created DESC, post.id DESC"

// PostDB implements core.PostDB.
type PostDB struct {
	db  *sqlx.DB
	Now func() time.Time // for the updated timestamp of IncrementViews, defaults to time.Now
}

func NewPostDB(db *sqlx.DB) *PostDB {
	return &PostDB{
		db:  db,
		Now: time.Now,
	}
}

func (pdb *PostDB) CreatePost(ctx context.Context, p *core.Post) error {
	id, err := insertID(ctx, pdb.db,
		"INSERT INTO post (author_id, title, content, excerpt, created, updated, published, views) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		p.AuthorID, p.Title, p.Content, p.Excerpt, p.Created.Unix(), p.Updated.Unix(), p.Published, p.Views)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (pdb *PostDB) selectAll(ctx context.Context, query string) ([]*core.Post, error) {

	var rows []postRow
	if err := pdb.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	var posts = make([]*core.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].post())
	}
	return posts, nil
}

// GetAllPosts includes unpublished posts.
func (pdb *PostDB) GetAllPosts(ctx context.Context) ([]*core.Post, error) {
	return pdb.selectAll(ctx, selectPosts+orderPosts)
}

func (pdb *PostDB) GetPublishedPosts(ctx context.Context) ([]*core.Post, error) {
	return pdb.selectAll(ctx, selectPosts+" WHERE post.published"+orderPosts)
}

func (pdb *PostDB) GetPublishedPost(ctx context.Context, id int) (*core.Post, error) {
	var row postRow
	err := pdb.db.GetContext(ctx, &row, pdb.db.Rebind(selectPosts+" WHERE post.id = ? AND post.published"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.post(), nil
}

// IncrementViews is a single UPDATE statement, so concurrent views are not lost.
func (pdb *PostDB) IncrementViews(ctx context.Context, id int) error {
	res, err := pdb.db.ExecContext(ctx, pdb.db.Rebind("UPDATE post SET views = views + 1, updated = ? WHERE id = ? AND published"), pdb.Now().Unix(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (pdb *PostDB) TitleExists(ctx context.Context, title string) (bool, error) {
	return exists(ctx, pdb.db, "SELECT COUNT(*) FROM post WHERE title = ?", title)
}

package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crucial707/postboard/internal/db"
	"github.com/crucial707/postboard/internal/metrics"
	"github.com/crucial707/postboard/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type PostRepo struct {
	DB db.Querier
}

func NewPostRepo(q db.Querier) *PostRepo {
	return &PostRepo{DB: q}
}

// ========================
// CREATE POST
// ========================

// Create inserts a post for userID. The author is not looked up first; a dangling
// reference surfaces as the store's foreign key error.
func (r *PostRepo) Create(ctx context.Context, title, content string, userID int) (post *models.Post, err error) {
	defer func() { metrics.RecordStoreOp("post", "create", err, ErrNotFound) }()

	post = &models.Post{}
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO posts (title, content, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, content, user_id`,
		title, content, userID,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.UserID,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ========================
// GET POST BY ID
// ========================

func (r *PostRepo) GetByID(ctx context.Context, id int) (post *models.Post, err error) {
	defer func() { metrics.RecordStoreOp("post", "get", err, ErrNotFound) }()

	post = &models.Post{}
	err = r.DB.QueryRowContext(ctx,
		`SELECT id, title, content, user_id
		 FROM posts
		 WHERE id = $1`,
		id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.UserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ========================
// UPDATE POST BY ID
// ========================

// Update changes title and content only; the author is fixed at creation.
func (r *PostRepo) Update(ctx context.Context, id int, title, content string) (post *models.Post, err error) {
	defer func() { metrics.RecordStoreOp("post", "update", err, ErrNotFound) }()

	post = &models.Post{}
	err = r.DB.QueryRowContext(ctx,
		`UPDATE posts
		 SET title = $1, content = $2
		 WHERE id = $3
		 RETURNING id, title, content, user_id`,
		title, content, id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.UserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ========================
// DELETE POST BY ID
// ========================

func (r *PostRepo) Delete(ctx context.Context, id int) (err error) {
	defer func() { metrics.RecordStoreOp("post", "delete", err, ErrNotFound) }()

	result, err := r.DB.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ========================
// LIST ALL POSTS
// ========================

// List returns every post whose author exists, in store order.
func (r *PostRepo) List(ctx context.Context) (posts []models.Post, err error) {
	defer func() { metrics.RecordStoreOp("post", "list", err, ErrNotFound) }()

	rows, err := r.DB.QueryContext(ctx,
		`SELECT p.id, p.title, p.content, p.user_id
		 FROM posts p
		 JOIN users u ON u.id = p.user_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.UserID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crucial707/postboard/internal/db"
	"github.com/crucial707/postboard/internal/metrics"
	"github.com/crucial707/postboard/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB db.Querier
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(q db.Querier) *UserRepo {
	return &UserRepo{DB: q}
}

// ==========================
// Create User
// ==========================
func (r *UserRepo) Create(ctx context.Context, username, email, password string) (user *models.User, err error) {
	defer func() { metrics.RecordStoreOp("user", "create", err, ErrNotFound) }()

	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password
	`

	user = &models.User{}
	err = r.DB.QueryRowContext(ctx, query, username, email, password).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Get By ID
// ==========================
func (r *UserRepo) GetByID(ctx context.Context, id int) (user *models.User, err error) {
	defer func() { metrics.RecordStoreOp("user", "get", err, ErrNotFound) }()

	query := `
		SELECT id, username, email, password
		FROM users
		WHERE id = $1
	`

	user = &models.User{}
	err = r.DB.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Update User
// ==========================

// Update overwrites username and email. An empty password keeps the stored one.
func (r *UserRepo) Update(ctx context.Context, id int, username, email, password string) (user *models.User, err error) {
	defer func() { metrics.RecordStoreOp("user", "update", err, ErrNotFound) }()

	query := `
		UPDATE users
		SET username = $1, email = $2, password = COALESCE(NULLIF($3, ''), password)
		WHERE id = $4
		RETURNING id, username, email, password
	`

	user = &models.User{}
	err = r.DB.QueryRowContext(ctx, query, username, email, password, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Delete User
// ==========================
func (r *UserRepo) Delete(ctx context.Context, id int) (err error) {
	defer func() { metrics.RecordStoreOp("user", "delete", err, ErrNotFound) }()

	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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

// ==========================
// List Users
// ==========================
func (r *UserRepo) List(ctx context.Context) (users []models.User, err error) {
	defer func() { metrics.RecordStoreOp("user", "list", err, ErrNotFound) }()

	rows, err := r.DB.QueryContext(ctx, `SELECT id, username, email, password FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

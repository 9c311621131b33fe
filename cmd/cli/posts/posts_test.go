package posts

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/postboard/cmd/cli/root"
)

func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	pool, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	restore := root.Open
	root.Open = func(ctx context.Context, dsn string) (*sql.DB, error) { return pool, nil }
	t.Cleanup(func() { root.Open = restore })
	return mock
}

func TestListPosts_TableOutput(t *testing.T) {
	mock := useMockDB(t)
	mock.ExpectQuery(`FROM posts p\s+JOIN users u`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "user_id"}).
			AddRow(1, "Hello", "World", 2))

	cmd := listPostsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Hello") {
		t.Errorf("expected post title in output:\n%s", out.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreatePost(t *testing.T) {
	mock := useMockDB(t)
	mock.ExpectQuery(`INSERT INTO posts \(title, content, user_id\)`).
		WithArgs("Hello", "World", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "user_id"}).AddRow(9, "Hello", "World", 2))

	cmd := createPostCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--title", "Hello", "--content", "World", "--user-id", "2"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Created post 9 for user 2") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreatePost_RequiresUserID(t *testing.T) {
	useMockDB(t)

	cmd := createPostCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "Hello", "--content", "World"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without --user-id")
	}
}

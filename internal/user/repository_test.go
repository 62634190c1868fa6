package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestCreateAndFindUser(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, name, email")).
		WithArgs("Ann", "ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Ann", "ann@example.com"))

	u, err := repo.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Ann", "ann@example.com"))

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", got.Email)
}

func TestFindByIDNotFound(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM users WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	_, err := repo.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 2), ErrUserNotFound)
}

func TestEmailTaken(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)")).
		WithArgs("ann@example.com", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.EmailTaken(context.Background(), "ann@example.com", 0)
	require.NoError(t, err)
	require.True(t, taken)
}

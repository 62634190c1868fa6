package item

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewRepository(sqlx.NewDb(mockDB, "postgres")), mock
}

func TestCreateItem(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO items (name, description, available, owner_id, request_id)`)).
		WithArgs("drill", "cordless drill", true, int64(1), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	created, err := repo.Create(ctx, &Item{
		Name:        "drill",
		Description: "cordless drill",
		Available:   true,
		OwnerID:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindItemByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, available, owner_id, request_id
		FROM items WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "available", "owner_id", "request_id"}))

	_, err := repo.FindByID(ctx, 42)

	assert.ErrorIs(t, err, ErrItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchOnlyAvailable(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "available", "owner_id", "request_id"}).
		AddRow(5, "drill", "cordless drill", true, 1, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE available = TRUE AND (name ILIKE $1 OR description ILIKE $1)`)).
		WithArgs("%drill%", 10, 0).
		WillReturnRows(rows)

	items, err := repo.Search(ctx, "drill", 10, 0)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "drill", items[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateItemNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4`)).
		WithArgs("drill", "cordless", true, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(ctx, &Item{ID: 42, Name: "drill", Description: "cordless", Available: true})

	assert.ErrorIs(t, err, ErrItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCommentsByItemOrdered(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	rows := sqlmock.NewRows([]string{"id", "text", "item_id", "author_name", "created"}).
		AddRow(1, "first", 5, "bob", created).
		AddRow(2, "second", 5, "alice", created.Add(time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.created ASC`)).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	comments, err := repo.FindCommentsByItem(ctx, 5)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "bob", comments[0].AuthorName)
	require.NoError(t, mock.ExpectationsWereMet())
}

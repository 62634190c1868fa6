package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shareit/internal/db"
)

var ErrRequestNotFound = errors.New("item request not found")

type requestRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *ItemRequest) (*ItemRequest, error) {
	query := `INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, req.Description, req.RequestorID, req.Created).Scan(&req.ID)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	return req, nil
}

func (r *requestRepository) FindByID(ctx context.Context, id int64) (*ItemRequest, error) {
	var req ItemRequest
	query := `SELECT id, description, requestor_id, created FROM requests WHERE id = $1`

	err := r.db.GetContext(ctx, &req, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select request %d: %w", id, err)
	}

	return &req, nil
}

func (r *requestRepository) FindByRequestor(ctx context.Context, requestorID int64) ([]ItemRequest, error) {
	requests := []ItemRequest{}
	query := `SELECT id, description, requestor_id, created
		FROM requests WHERE requestor_id = $1
		ORDER BY created DESC`

	if err := r.db.SelectContext(ctx, &requests, query, requestorID); err != nil {
		return nil, fmt.Errorf("select requests of user %d: %w", requestorID, err)
	}

	return requests, nil
}

func (r *requestRepository) FindOthers(ctx context.Context, excludeUserID int64, limit, offset int) ([]ItemRequest, error) {
	requests := []ItemRequest{}
	query := `SELECT id, description, requestor_id, created
		FROM requests WHERE requestor_id <> $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &requests, query, excludeUserID, limit, offset); err != nil {
		return nil, fmt.Errorf("select requests of other users: %w", err)
	}

	return requests, nil
}

func (r *requestRepository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check request %d: %w", id, err)
	}
	return exists, nil
}

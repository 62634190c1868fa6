package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrItemNotFound = errors.New("item not found")

type itemRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *Item) (*Item, error) {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).Scan(&it.ID)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	return it, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*Item, error) {
	var it Item
	query := `SELECT id, name, description, available, owner_id, request_id
		FROM items WHERE id = $1`

	err := r.db.GetContext(ctx, &it, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select item %d: %w", id, err)
	}

	return &it, nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]Item, error) {
	items := []Item{}
	query := `SELECT id, name, description, available, owner_id, request_id
		FROM items WHERE owner_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &items, query, ownerID, limit, offset); err != nil {
		return nil, fmt.Errorf("select items of owner %d: %w", ownerID, err)
	}

	return items, nil
}

func (r *itemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]Item, error) {
	if len(requestIDs) == 0 {
		return []Item{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, name, description, available, owner_id, request_id
		FROM items WHERE request_id IN (?) ORDER BY id ASC`, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("build request items query: %w", err)
	}

	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select items by requests: %w", err)
	}

	return items, nil
}

func (r *itemRepository) Search(ctx context.Context, text string, limit, offset int) ([]Item, error) {
	items := []Item{}
	query := `SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE available = TRUE AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`

	pattern := "%" + text + "%"
	if err := r.db.SelectContext(ctx, &items, query, pattern, limit, offset); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, it *Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Available, it.ID)
	if err != nil {
		return fmt.Errorf("update item %d: %w", it.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item %d: rows affected: %w", it.ID, err)
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item %d: rows affected: %w", id, err)
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) CreateComment(ctx context.Context, c *Comment) (*Comment, error) {
	query := `INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, c.Text, c.ItemID, c.AuthorID, c.Created).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return c, nil
}

func (r *itemRepository) FindCommentsByItem(ctx context.Context, itemID int64) ([]CommentView, error) {
	comments := []CommentView{}
	query := `SELECT c.id, c.text, c.item_id, u.name AS author_name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created ASC`

	if err := r.db.SelectContext(ctx, &comments, query, itemID); err != nil {
		return nil, fmt.Errorf("select comments of item %d: %w", itemID, err)
	}

	return comments, nil
}

func (r *itemRepository) FindCommentsByItems(ctx context.Context, itemIDs []int64) ([]CommentView, error) {
	if len(itemIDs) == 0 {
		return []CommentView{}, nil
	}

	query, args, err := sqlx.In(`SELECT c.id, c.text, c.item_id, u.name AS author_name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id IN (?)
		ORDER BY c.created ASC`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("build comments query: %w", err)
	}

	comments := []CommentView{}
	if err := r.db.SelectContext(ctx, &comments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select comments by items: %w", err)
	}

	return comments, nil
}

package item

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) (*Item, error)
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]Item, error)
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id int64) error

	CreateComment(ctx context.Context, c *Comment) (*Comment, error)
	FindCommentsByItem(ctx context.Context, itemID int64) ([]CommentView, error)
	FindCommentsByItems(ctx context.Context, itemIDs []int64) ([]CommentView, error)
}

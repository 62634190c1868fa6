package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *ItemRequest) (*ItemRequest, error)
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)
	FindByRequestor(ctx context.Context, requestorID int64) ([]ItemRequest, error)
	FindOthers(ctx context.Context, excludeUserID int64, limit, offset int) ([]ItemRequest, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

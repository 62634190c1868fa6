package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

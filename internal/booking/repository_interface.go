package booking

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	FindByID(ctx context.Context, id int64) (*Details, error)

	// UpdateStatusIfWaiting applies a decision only when the booking is
	// still WAITING. It reports whether the row was changed.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status Status) (bool, error)

	FindByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]Details, error)
	FindByBookerAndStatus(ctx context.Context, bookerID int64, status Status, limit, offset int) ([]Details, error)
	FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]Details, error)
	FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]Details, error)
	FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]Details, error)

	FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]Details, error)
	FindByOwnerAndStatus(ctx context.Context, ownerID int64, status Status, limit, offset int) ([]Details, error)
	FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Details, error)
	FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Details, error)
	FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Details, error)

	FindApprovedByItems(ctx context.Context, itemIDs []int64) ([]Booking, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

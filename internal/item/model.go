package item

import (
	"context"
	"time"

	"shareit/internal/localtime"
)

type Item struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Available   bool   `db:"available" json:"available"`
	OwnerID     int64  `db:"owner_id" json:"owner_id"`
	RequestID   *int64 `db:"request_id" json:"request_id,omitempty"`
}

// ShortBooking is the minimal booking projection attached to item
// views as last_booking/next_booking.
type ShortBooking struct {
	ID       int64          `json:"id"`
	Start    localtime.Time `json:"start"`
	End      localtime.Time `json:"end"`
	ItemID   int64          `json:"item_id"`
	BookerID int64          `json:"booker_id"`
}

// Summaries carries the derived last/next projection for one item.
// Either side may be nil.
type Summaries struct {
	Last *ShortBooking
	Next *ShortBooking
}

// BookingProjector is implemented by the booking package. The item
// side never reaches into booking storage directly.
type BookingProjector interface {
	SummariesForItems(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]Summaries, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

// RequestChecker is implemented by the request package; it only needs
// to confirm that a referenced item request exists.
type RequestChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Comment struct {
	ID       int64     `db:"id"`
	Text     string    `db:"text"`
	ItemID   int64     `db:"item_id"`
	AuthorID int64     `db:"author_id"`
	Created  time.Time `db:"created"`
}

type CommentView struct {
	ID         int64          `db:"id" json:"id"`
	Text       string         `db:"text" json:"text"`
	ItemID     int64          `db:"item_id" json:"item_id"`
	AuthorName string         `db:"author_name" json:"author_name"`
	Created    localtime.Time `db:"created" json:"created"`
}

// View is the item representation returned to clients. The booking
// summaries are only populated for the item's owner.
type View struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *int64        `json:"request_id,omitempty"`
	LastBooking *ShortBooking `json:"last_booking"`
	NextBooking *ShortBooking `json:"next_booking"`
	Comments    []CommentView `json:"comments"`
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	Description string `json:"description" binding:"required" validate:"required"`
	Available   *bool  `json:"available" binding:"required" validate:"required"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// UpdateItemRequest is a partial update: only present fields are
// applied.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required" validate:"required"`
}

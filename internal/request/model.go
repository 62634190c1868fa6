package request

import (
	"time"

	"shareit/internal/item"
	"shareit/internal/localtime"
)

type ItemRequest struct {
	ID          int64     `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	RequestorID int64     `db:"requestor_id" json:"requestor_id"`
	Created     time.Time `db:"created" json:"created"`
}

// View is an item request together with the items offered in answer
// to it.
type View struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     localtime.Time `json:"created"`
	Items       []item.Item    `json:"items"`
}

type CreateRequest struct {
	Description string `json:"description" binding:"required" validate:"required"`
}

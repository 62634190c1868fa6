package booking

import (
	"strings"
	"time"

	"shareit/internal/apperr"
	"shareit/internal/localtime"
)

// Status is the lifecycle state of a booking. Every booking starts as
// WAITING and is moved exactly once to APPROVED or REJECTED by the
// item's owner.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether the status can no longer change.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// StateFilter selects a slice of a user's bookings. ALL, WAITING and
// REJECTED filter by status; CURRENT, PAST and FUTURE filter by the
// booking interval relative to the evaluation moment.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

// ParseStateFilter parses a state query parameter, case-insensitively.
func ParseStateFilter(text string) (StateFilter, error) {
	switch StateFilter(strings.ToUpper(strings.TrimSpace(text))) {
	case FilterAll:
		return FilterAll, nil
	case FilterCurrent:
		return FilterCurrent, nil
	case FilterPast:
		return FilterPast, nil
	case FilterFuture:
		return FilterFuture, nil
	case FilterWaiting:
		return FilterWaiting, nil
	case FilterRejected:
		return FilterRejected, nil
	default:
		return "", apperr.Validation("Unknown state: %s", text)
	}
}

type Booking struct {
	ID       int64     `db:"id"`
	Start    time.Time `db:"start_booking"`
	End      time.Time `db:"end_booking"`
	ItemID   int64     `db:"item_id"`
	BookerID int64     `db:"booker_id"`
	Status   Status    `db:"status"`
}

// Details is a booking joined with the names needed to render it and
// the owner id needed to authorize decisions.
type Details struct {
	Booking
	ItemName    string `db:"item_name"`
	ItemOwnerID int64  `db:"item_owner_id"`
	BookerName  string `db:"booker_name"`
}

type ItemSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type View struct {
	ID     int64          `json:"id"`
	Start  localtime.Time `json:"start"`
	End    localtime.Time `json:"end"`
	Item   ItemSummary    `json:"item"`
	Booker UserSummary    `json:"booker"`
	Status Status         `json:"status"`
}

func newView(d *Details) *View {
	return &View{
		ID:     d.ID,
		Start:  localtime.Of(d.Start),
		End:    localtime.Of(d.End),
		Item:   ItemSummary{ID: d.ItemID, Name: d.ItemName},
		Booker: UserSummary{ID: d.BookerID, Name: d.BookerName},
		Status: d.Status,
	}
}

func newViews(details []Details) []View {
	views := make([]View, 0, len(details))
	for i := range details {
		views = append(views, *newView(&details[i]))
	}
	return views
}

type CreateBookingRequest struct {
	ItemID int64          `json:"item_id" binding:"required" validate:"required"`
	Start  localtime.Time `json:"start"`
	End    localtime.Time `json:"end"`
}

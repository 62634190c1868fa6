package booking

import (
	"context"
	"time"

	"shareit/internal/item"
	"shareit/internal/localtime"
)

// ProjectionBuilder derives the last/next booking summaries shown on
// item views. Only APPROVED bookings are considered: last is the one
// with the latest start strictly before now, next the one with the
// earliest start strictly after now.
type ProjectionBuilder struct {
	repo Repository
}

func NewProjectionBuilder(repo Repository) *ProjectionBuilder {
	return &ProjectionBuilder{repo: repo}
}

func (p *ProjectionBuilder) SummariesForItems(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]item.Summaries, error) {
	bookings, err := p.repo.FindApprovedByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]item.Summaries, len(itemIDs))
	lastStart := make(map[int64]time.Time)
	nextStart := make(map[int64]time.Time)

	for i := range bookings {
		b := &bookings[i]
		s := out[b.ItemID]

		switch {
		case b.Start.Before(now):
			if s.Last == nil || b.Start.After(lastStart[b.ItemID]) {
				s.Last = shortView(b)
				lastStart[b.ItemID] = b.Start
			}
		case b.Start.After(now):
			if s.Next == nil || b.Start.Before(nextStart[b.ItemID]) {
				s.Next = shortView(b)
				nextStart[b.ItemID] = b.Start
			}
		}

		out[b.ItemID] = s
	}

	return out, nil
}

func (p *ProjectionBuilder) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	return p.repo.HasFinishedApproved(ctx, itemID, bookerID, now)
}

func shortView(b *Booking) *item.ShortBooking {
	return &item.ShortBooking{
		ID:       b.ID,
		Start:    localtime.Of(b.Start),
		End:      localtime.Of(b.End),
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
	}
}

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummariesForItems(t *testing.T) {
	repo := new(MockBookingRepo)
	builder := NewProjectionBuilder(repo)
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

	approved := func(id, itemID int64, start time.Time) Booking {
		return Booking{
			ID:       id,
			Start:    start,
			End:      start.Add(24 * time.Hour),
			ItemID:   itemID,
			BookerID: 3,
			Status:   StatusApproved,
		}
	}

	repo.On("FindApprovedByItems", ctx, []int64{5, 6, 7}).Return([]Booking{
		// item 5: two past, two future
		approved(1, 5, now.Add(-10*24*time.Hour)),
		approved(2, 5, now.Add(-2*24*time.Hour)),
		approved(3, 5, now.Add(3*24*time.Hour)),
		approved(4, 5, now.Add(9*24*time.Hour)),
		// item 6: only past
		approved(5, 6, now.Add(-24*time.Hour)),
	}, nil)

	summaries, err := builder.SummariesForItems(ctx, []int64{5, 6, 7}, now)

	require.NoError(t, err)

	s5 := summaries[5]
	require.NotNil(t, s5.Last)
	require.NotNil(t, s5.Next)
	assert.Equal(t, int64(2), s5.Last.ID, "last is the latest start before now")
	assert.Equal(t, int64(3), s5.Next.ID, "next is the earliest start after now")

	s6 := summaries[6]
	require.NotNil(t, s6.Last)
	assert.Nil(t, s6.Next)

	_, ok := summaries[7]
	assert.False(t, ok, "item without approved bookings has no summaries")
}

func TestSummariesIgnoreBookingStartingNow(t *testing.T) {
	repo := new(MockBookingRepo)
	builder := NewProjectionBuilder(repo)
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

	repo.On("FindApprovedByItems", ctx, []int64{5}).Return([]Booking{
		{ID: 1, Start: now, End: now.Add(24 * time.Hour), ItemID: 5, BookerID: 3, Status: StatusApproved},
	}, nil)

	summaries, err := builder.SummariesForItems(ctx, []int64{5}, now)

	require.NoError(t, err)
	s := summaries[5]
	assert.Nil(t, s.Last)
	assert.Nil(t, s.Next)
}

func TestHasFinishedBooking(t *testing.T) {
	repo := new(MockBookingRepo)
	builder := NewProjectionBuilder(repo)
	ctx := context.Background()
	now := time.Now()

	repo.On("HasFinishedApproved", ctx, int64(5), int64(3), now).Return(true, nil)

	finished, err := builder.HasFinishedBooking(ctx, 5, 3, now)

	require.NoError(t, err)
	assert.True(t, finished)
}

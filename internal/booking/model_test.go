package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/apperr"
)

func TestParseStateFilter(t *testing.T) {
	cases := []struct {
		in   string
		want StateFilter
	}{
		{"ALL", FilterAll},
		{"all", FilterAll},
		{" Current ", FilterCurrent},
		{"PAST", FilterPast},
		{"future", FilterFuture},
		{"WAITING", FilterWaiting},
		{"rejected", FilterRejected},
	}

	for _, tc := range cases {
		got, err := ParseStateFilter(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseStateFilterUnknown(t *testing.T) {
	for _, in := range []string{"", "APPROVED2", "SOMETHING", "CANCELLED"} {
		_, err := ParseStateFilter(in)
		require.Error(t, err, in)
		assert.Equal(t, 400, apperr.Status(err))
		assert.Contains(t, apperr.Message(err), "Unknown state")
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusWaiting.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

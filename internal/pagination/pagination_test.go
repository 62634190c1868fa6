package pagination

import (
	"net/http"
	"testing"

	"shareit/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse(0, 10)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 10, Offset: 0}, p)

	// from inside a page snaps back to the page boundary
	p, err = Parse(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 2, Offset: 2}, p)

	p, err = Parse(20, 5)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 5, Offset: 20}, p)
}

func TestParseRejectsBadWindow(t *testing.T) {
	_, err := Parse(-1, 10)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	// size=0 is rejected, never "unpaged"
	_, err = Parse(0, 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	_, err = Parse(5, -2)
	require.Error(t, err)
}

package gitlib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_Duration(t *testing.T) {
	t.Parallel()

	parsed, err := ParseTime("24h")

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), parsed, time.Minute)
}

func TestParseTime_RFC3339(t *testing.T) {
	t.Parallel()

	parsed, err := ParseTime("2024-01-01T12:30:00Z")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), parsed.UTC())
}

func TestParseTime_DateOnly(t *testing.T) {
	t.Parallel()

	parsed, err := ParseTime("2024-01-01")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), parsed.UTC())
}

func TestParseTime_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseTime("yesterday-ish")

	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestReverseCommits(t *testing.T) {
	t.Parallel()

	a, b, c := &Commit{}, &Commit{}, &Commit{}
	commits := []*Commit{a, b, c}

	ReverseCommits(commits)

	assert.Equal(t, []*Commit{c, b, a}, commits)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_Valid(t *testing.T) {
	r, err := NewDateRange("2024-01-01", "2024-01-31")

	require.NoError(t, err)
	assert.Equal(t, 30, r.Days())
	assert.Equal(t, "2024-01-01..2024-01-31", r.String())
}

func TestNewDateRange_SingleDay(t *testing.T) {
	r, err := NewDateRange("2024-01-01", "2024-01-01")

	require.NoError(t, err)
	assert.Equal(t, 0, r.Days())
}

func TestNewDateRange_StartAfterEnd(t *testing.T) {
	_, err := NewDateRange("2024-02-01", "2024-01-01")

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNewDateRange_BadFormat(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"slashes", "2024/01/01", "2024-01-02"},
		{"empty end", "2024-01-01", ""},
		{"month out of range", "2024-13-01", "2024-12-31"},
		{"with time", "2024-01-01T10:00:00", "2024-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r, err := NewDateRange("2024-03-10", "2024-03-12")
	require.NoError(t, err)

	loc := r.Start.Location()
	assert.True(t, r.Contains(time.Date(2024, 3, 10, 0, 0, 0, 0, loc)))
	assert.True(t, r.Contains(time.Date(2024, 3, 12, 23, 59, 59, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 3, 9, 23, 59, 59, 0, loc)))
	assert.False(t, r.Contains(time.Date(2024, 3, 13, 0, 0, 0, 0, loc)))
}

func TestDateRange_ValidateZero(t *testing.T) {
	assert.ErrorIs(t, DateRange{}.Validate(), ErrInvalidDate)
}

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		n    int
		want string
	}{
		{"same day", "2024-01-05", 0, "2024-01-05"},
		{"two days", "2024-01-05", 2, "2024-01-07"},
		{"month rollover", "2024-01-31", 1, "2024-02-01"},
		{"leap day", "2024-02-28", 1, "2024-02-29"},
		{"year rollover", "2024-12-30", 7, "2025-01-06"},
		{"ninety days", "2024-01-01", 90, "2024-03-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.iso, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDays_BadInput(t *testing.T) {
	_, err := AddDays("01/05/2024", 1)
	require.Error(t, err)
}

func TestISOStringsCompareLexicographically(t *testing.T) {
	// The whole codebase relies on this property.
	assert.True(t, "2024-01-05" < "2024-01-07")
	assert.True(t, "2024-09-30" < "2024-10-01")
	assert.True(t, "2024-12-31" < "2025-01-01")
}

func TestFixedClock(t *testing.T) {
	var c Clock = FixedClock("2024-01-05")
	assert.Equal(t, "2024-01-05", c.Today())
}

func TestParseInput(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{"blank means today", "", "2024-01-05", false},
		{"iso passthrough", "2024-03-01", "2024-03-01", false},
		{"tomorrow", "tomorrow", "2024-01-06", false},
		{"garbage", "someday maybe", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.text, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Time
		offset int
	}{
		{"2018-12-09T14:19:00+00:00", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
		{"2018-12-09T14:19:00Z", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
		{"2018-12-09T14:19:00.250+01:00", time.Date(2018, 12, 9, 13, 19, 0, 250e6, time.UTC), 3600},
		{"2018-12-09T23:19:00-05:00", time.Date(2018, 12, 10, 4, 19, 0, 0, time.UTC), -5 * 3600},
		{"2018-12-09 14:19:00+02:00", time.Date(2018, 12, 9, 12, 19, 0, 0, time.UTC), 2 * 3600},
		{"2018-12-09T14:19:00", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
		{"2018-12-09 14:19:00", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
		{"2018-12-09T14:19+00:00", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
		{"2018-12-09T14:19Z", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
		{"2018-12-09 23:30-05:00", time.Date(2018, 12, 10, 4, 30, 0, 0, time.UTC), -5 * 3600},
		{"2018-12-09T14:19", time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v", got)
			_, offset := got.Zone()
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, in := range []string{"", "10-10-2025", "2018-12-09", "yesterday", "2018-12-09T25:00:00+00:00", "2018-12-09T14:19:00+0000", "2018-12-09T14+00:00"} {
		_, err := ParseTimestamp(in)
		assert.ErrorIs(t, err, ErrTimestamp, in)
	}
}

package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2018-12-09")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2018, Month: time.December, Day: 9}, d)
	assert.Equal(t, "2018-12-09", d.String())

	for _, bad := range []string{"", "2018-12-9", "12-09-2018", "2018/12/09", "2018-02-30", "2018-13-01", "2018-12-09T00:00:00"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateCompare(t *testing.T) {
	d := Date{Year: 2018, Month: time.December, Day: 9}
	tests := []struct {
		other Date
		want  int
	}{
		{Date{2018, time.December, 9}, 0},
		{Date{2018, time.December, 8}, 1},
		{Date{2018, time.December, 10}, -1},
		{Date{2018, time.November, 30}, 1},
		{Date{2019, time.January, 1}, -1},
		{Date{2017, time.December, 31}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Compare(tt.other), tt.other.String())
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2018, time.December, 9, 23, 19, 0, 0, time.FixedZone("", -5*3600))

	assert.Equal(t, Date{2018, time.December, 10}, DateOf(ts, BasisUTC))
	assert.Equal(t, Date{2018, time.December, 9}, DateOf(ts, BasisOffset))

	utc := time.Date(2018, time.December, 9, 23, 19, 0, 0, time.UTC)
	assert.Equal(t, DateOf(utc, BasisUTC), DateOf(utc, BasisOffset))
}

func TestParseDateBasis(t *testing.T) {
	tests := []struct {
		in   string
		want DateBasis
	}{
		{"utc", BasisUTC},
		{"UTC", BasisUTC},
		{"", BasisUTC},
		{"offset", BasisOffset},
		{" Offset ", BasisOffset},
	}
	for _, tt := range tests {
		got, err := ParseDateBasis(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDateBasis("local")
	assert.Error(t, err)

	var b DateBasis
	require.NoError(t, b.Set("offset"))
	assert.Equal(t, BasisOffset, b)
	assert.Equal(t, "offset", b.String())
	assert.Error(t, b.Set("nope"))
	assert.Equal(t, BasisOffset, b)
}

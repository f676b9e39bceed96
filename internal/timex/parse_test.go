package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerTime(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "rfc3339 zulu", input: "2030-01-02T03:04:05Z", want: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC), wantOK: true},
		{name: "millis", input: "1990-06-15T00:00:00.000Z", want: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "offset", input: "2030-01-02T03:04:05-05:00", want: time.Date(2030, 1, 2, 8, 4, 5, 0, time.UTC), wantOK: true},
		{name: "no zone", input: "2030-01-02T03:04:05", want: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC), wantOK: true},
		{name: "no zone with fraction", input: "2030-01-02T03:04:05.1234567", want: time.Date(2030, 1, 2, 3, 4, 5, 123456700, time.UTC), wantOK: true},
		{name: "space separated", input: "2030-01-02 03:04:05", want: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC), wantOK: true},
		{name: "date only", input: "2030-01-02", want: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "blank", input: "  "},
		{name: "garbage", input: "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseServerTime(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestFormatISO(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	got := FormatISO(time.Date(2024, 5, 1, 19, 0, 0, 0, loc))
	assert.Equal(t, "2024-05-02T00:00:00.000Z", got)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	assert.True(t, SameDate(a, time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, SameDate(a, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
}

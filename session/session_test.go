package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"03:30", 210, false},
		{"18:30", 1110, false},
		{"23:59", 1439, false},
		{"9:05", 545, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"1230", 0, true},
		{"ab:cd", 0, true},
		{"+9:05", 0, true},
		{"-0:30", 0, true},
		{"12:+5", 0, true},
		{":30", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "13:30", TimeOfDay(810).String())
	assert.Equal(t, "23:59", TimeOfDay(-1).String())
	assert.Equal(t, "00:01", TimeOfDay(MinutesPerDay+1).String())
}

func TestIsActiveSameDayWindow(t *testing.T) {
	t.Parallel()

	start, end := MustParse("13:30"), MustParse("22:30")
	for now := TimeOfDay(0); now < MinutesPerDay; now++ {
		want := now >= start && now < end
		assert.Equal(t, want, IsActive(now, start, end), "now=%s", now)
	}
}

func TestIsActiveMidnightCrossing(t *testing.T) {
	t.Parallel()

	start, end := MustParse("18:30"), MustParse("03:30")
	for now := TimeOfDay(0); now < MinutesPerDay; now++ {
		inLate := now >= start && now < MinutesPerDay
		inEarly := now >= 0 && now < end
		assert.Equal(t, inLate || inEarly, IsActive(now, start, end), "now=%s", now)
	}
}

func TestIsActiveBoundaries(t *testing.T) {
	t.Parallel()

	for _, s := range Defaults {
		assert.True(t, IsActive(s.Start, s.Start, s.End), s.Name)
		assert.False(t, IsActive(s.End, s.Start, s.End), s.Name)
		assert.True(t, IsActive(s.End-1, s.Start, s.End), s.Name)
	}

	// start == end wraps the whole day
	for _, now := range []TimeOfDay{0, 600, 1439} {
		assert.True(t, IsActive(now, 600, 600))
	}
}

func TestAtConvertsToReferenceZone(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("")
	require.NoError(t, err)

	// 08:00 UTC is 13:30 IST, the London open.
	utc := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, MustParse("13:30"), At(utc, loc))

	// 22:15 UTC rolls over to 03:45 IST the next day.
	utc = time.Date(2025, 3, 10, 22, 15, 0, 0, time.UTC)
	assert.Equal(t, MustParse("03:45"), At(utc, loc))
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = LoadLocation("Nowhere/Special")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	got, ok := Lookup(Defaults, "new york")
	require.True(t, ok)
	assert.Equal(t, "New York", got.Name)

	_, ok = Lookup(Defaults, "Frankfurt")
	assert.False(t, ok)

	assert.Equal(t, []string{"Sydney", "Tokyo", "London", "New York"}, Names(Defaults))
}

package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	buy := sample("London")
	sell := sample("Tokyo")
	sell.Bias = []Bias{Sell}
	both := sample("New York")
	both.Bias = []Bias{Sell, Buy}

	_, err := s.Add("2025-03-03", buy)
	require.NoError(t, err)
	_, err = s.Add("2025-03-03", sell)
	require.NoError(t, err)
	_, err = s.Add("2025-03-31", both)
	require.NoError(t, err)
	_, err = s.Add("2025-04-01", buy)
	require.NoError(t, err)

	mv, err := Month(s, 2025, time.March)
	require.NoError(t, err)

	// 1 March 2025 is a Saturday.
	assert.Equal(t, 6, mv.Lead)
	require.Len(t, mv.Days, 31)

	assert.Equal(t, "2025-03-03", mv.Days[2].Date)
	assert.Equal(t, []Bias{Buy, Sell}, mv.Days[2].Markers)
	assert.Equal(t, []Bias{Buy}, mv.Days[30].Markers)
	assert.Empty(t, mv.Days[0].Markers)

	weeks := mv.Weeks()
	require.Len(t, weeks, 6)
	for _, w := range weeks {
		assert.Len(t, w, 7)
	}
	assert.Zero(t, weeks[0][5].Day)
	assert.Equal(t, 1, weeks[0][6].Day)
	assert.Equal(t, 31, weeks[5][1].Day)
}

func TestMonthFebruaryLeapYear(t *testing.T) {
	t.Parallel()

	mv, err := Month(NewMemStore(), 2024, time.February)
	require.NoError(t, err)
	assert.Len(t, mv.Days, 29)
	assert.Equal(t, 4, mv.Lead) // Thursday

	mv, err = Month(NewMemStore(), 2025, time.February)
	require.NoError(t, err)
	assert.Len(t, mv.Days, 28)
}

func TestDateKey(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("IST", 5*3600+1800)
	utc := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", DateKey(utc))
	assert.Equal(t, "2025-03-11", DateKey(utc.In(loc)))
}

package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	j, err := NewSQLite()
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)

	var name string
	err := j.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "entries", name)
}

func TestSQLiteStoresSetsAsJSON(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)
	e, err := j.Add("2025-02-03", TradeEntry{
		Pair:        "USDJPY",
		Session:     "Tokyo",
		Confluences: []string{"Supply/Demand Zone"},
		Bias:        []Bias{Buy, Sell},
	})
	require.NoError(t, err)

	var conf, bias string
	err = j.db.QueryRow(`SELECT confluences, bias FROM entries WHERE id = ?`, e.ID).Scan(&conf, &bias)
	require.NoError(t, err)
	assert.JSONEq(t, `["Supply/Demand Zone"]`, conf)
	assert.JSONEq(t, `["Buy","Sell"]`, bias)
}

func TestSQLiteEmptySetsRoundTrip(t *testing.T) {
	t.Parallel()

	j := newTestSQLite(t)
	e, err := j.Add("2025-02-04", TradeEntry{Pair: "EURUSD"})
	require.NoError(t, err)

	got, err := j.List("2025-02-04", AllSessions)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
	assert.NotNil(t, got[0].Bias)
	assert.Empty(t, got[0].Bias)
}

func TestSQLiteIsNotShared(t *testing.T) {
	t.Parallel()

	a := newTestSQLite(t)
	b := newTestSQLite(t)

	_, err := a.Add("2025-02-05", sample("London"))
	require.NoError(t, err)

	has, err := b.Has("2025-02-05")
	require.NoError(t, err)
	assert.False(t, has)
}

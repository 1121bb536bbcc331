// journal/schema.go
package journal

// seq carries insertion order; id uniqueness is enforced by the table so a
// colliding id can never replace another entry.
const Schema = `
CREATE TABLE IF NOT EXISTS entries (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	date TEXT NOT NULL,
	pair TEXT NOT NULL,
	timeframe TEXT NOT NULL,
	session TEXT NOT NULL,
	fib_level TEXT NOT NULL,
	confluences TEXT NOT NULL,
	bias TEXT NOT NULL,
	comments TEXT NOT NULL,
	mistakes TEXT NOT NULL,
	screenshot TEXT NOT NULL DEFAULT '',
	voice_note_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date, seq);
`

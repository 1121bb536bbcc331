package journal

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// List returns entries for date in insertion order, optionally filtered
// by session.
func (j *SQLite) List(date, session string) ([]TradeEntry, error) {
	rows, err := j.db.Query(`
		SELECT id, date, pair, timeframe, session, fib_level, confluences, bias, comments, mistakes, screenshot, voice_note_url
		FROM entries
		WHERE date = ? AND (? = ? OR session = ?)
		ORDER BY seq ASC`, date, session, AllSessions, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TradeEntry{}
	for rows.Next() {
		var (
			rec        TradeEntry
			conf, bias string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.Pair,
			&rec.Timeframe,
			&rec.Session,
			&rec.FibLevel,
			&conf,
			&bias,
			&rec.Comments,
			&rec.Mistakes,
			&rec.Screenshot,
			&rec.VoiceNoteURL,
		); err != nil {
			return nil, err
		}
		if err := sonic.UnmarshalString(conf, &rec.Confluences); err != nil {
			return nil, fmt.Errorf("decode confluences of %s: %w", rec.ID, err)
		}
		if err := sonic.UnmarshalString(bias, &rec.Bias); err != nil {
			return nil, fmt.Errorf("decode bias of %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Has reports whether date has any entries.
func (j *SQLite) Has(date string) (bool, error) {
	var ok bool
	err := j.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM entries WHERE date = ?)`, date).Scan(&ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Dates lists every date with at least one entry.
func (j *SQLite) Dates() ([]string, error) {
	rows, err := j.db.Query(`SELECT DISTINCT date FROM entries ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

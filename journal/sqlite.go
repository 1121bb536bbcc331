package journal

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// memoryDSN opens a private in-memory database. It lives exactly as long
// as the single pooled connection, i.e. until Close.
const memoryDSN = ":memory:"

// SQLite is a Store backed by an in-memory SQLite database.
type SQLite struct {
	db   *sql.DB
	opts storeOptions
}

var _ Store = (*SQLite)(nil)

func NewSQLite(opts ...Option) (*SQLite, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, err
	}

	// Every new connection to :memory: is a new, empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, opts: buildOptions(opts)}, nil
}

func (j *SQLite) Add(date string, e TradeEntry) (TradeEntry, error) {
	e = e.normalized()
	e.Date = date

	conf, err := sonic.MarshalString(e.Confluences)
	if err != nil {
		return TradeEntry{}, fmt.Errorf("encode confluences: %w", err)
	}
	bias, err := sonic.MarshalString(e.Bias)
	if err != nil {
		return TradeEntry{}, fmt.Errorf("encode bias: %w", err)
	}

	for i := 0; i < maxIDAttempts; i++ {
		e.ID = j.opts.newID()
		_, err = j.db.Exec(`
			INSERT INTO entries
			(id, date, pair, timeframe, session, fib_level, confluences, bias, comments, mistakes, screenshot, voice_note_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Date, e.Pair, e.Timeframe, e.Session, e.FibLevel,
			conf, bias, e.Comments, e.Mistakes, e.Screenshot, e.VoiceNoteURL,
		)
		if err == nil {
			j.opts.logger.Debug("trade added",
				zap.String("id", e.ID),
				zap.String("date", date),
				zap.String("pair", e.Pair),
				zap.String("session", e.Session))
			return e.clone(), nil
		}
		if !isUniqueViolation(err) {
			return TradeEntry{}, fmt.Errorf("insert entry: %w", err)
		}
		j.opts.logger.Warn("id collision, regenerating", zap.String("id", e.ID))
	}
	return TradeEntry{}, fmt.Errorf("no unique id after %d attempts", maxIDAttempts)
}

func (j *SQLite) Remove(date, id string) error {
	res, err := j.db.Exec(`DELETE FROM entries WHERE date = ? AND id = ?`, date, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		j.opts.logger.Debug("trade removed", zap.String("id", id), zap.String("date", date))
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

package journal

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// MemStore keeps the trade log in process memory.
type MemStore struct {
	mu   sync.RWMutex
	days map[string][]TradeEntry
	ids  map[string]string // id -> date

	opts storeOptions
}

var _ Store = (*MemStore)(nil)

func NewMemStore(opts ...Option) *MemStore {
	return &MemStore{
		days: make(map[string][]TradeEntry),
		ids:  make(map[string]string),
		opts: buildOptions(opts),
	}
}

func (s *MemStore) Add(date string, e TradeEntry) (TradeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newID, err := s.freshID()
	if err != nil {
		return TradeEntry{}, err
	}

	e = e.normalized()
	e.ID = newID
	e.Date = date

	s.days[date] = append(s.days[date], e)
	s.ids[newID] = date

	s.opts.logger.Debug("trade added",
		zap.String("id", e.ID),
		zap.String("date", date),
		zap.String("pair", e.Pair),
		zap.String("session", e.Session))
	return e.clone(), nil
}

// freshID draws ids until one is unused. Caller holds s.mu.
func (s *MemStore) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		candidate := s.opts.newID()
		if _, taken := s.ids[candidate]; !taken && candidate != "" {
			return candidate, nil
		}
		s.opts.logger.Warn("id collision, regenerating", zap.String("id", candidate))
	}
	return "", fmt.Errorf("no unique id after %d attempts", maxIDAttempts)
}

func (s *MemStore) Remove(date, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.days[date]
	for i, e := range bucket {
		if e.ID != id {
			continue
		}
		bucket = append(bucket[:i:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(s.days, date)
		} else {
			s.days[date] = bucket
		}
		delete(s.ids, id)
		s.opts.logger.Debug("trade removed", zap.String("id", id), zap.String("date", date))
		return nil
	}
	return nil
}

func (s *MemStore) List(date, session string) ([]TradeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []TradeEntry{}
	for _, e := range s.days[date] {
		if matchSession(session, e.Session) {
			out = append(out, e.clone())
		}
	}
	return out, nil
}

func (s *MemStore) Has(date string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.days[date]) > 0, nil
}

func (s *MemStore) Dates() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.days))
	for d, bucket := range s.days {
		if len(bucket) > 0 {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Close drops every entry.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = make(map[string][]TradeEntry)
	s.ids = make(map[string]string)
	return nil
}

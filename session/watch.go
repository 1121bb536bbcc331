package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MaxRefresh is the staleness bound for a displayed board.
const MaxRefresh = time.Minute

// Watcher re-evaluates the session board on a fixed interval and hands
// each snapshot to a callback. The callback runs on the cron goroutine.
type Watcher struct {
	cron   *cron.Cron
	clock  Clock
	loc    *time.Location
	infos  []Info
	notify func(Snapshot)
	logger *zap.Logger

	mu   sync.Mutex
	last Snapshot
	runs int
}

// NewWatcher schedules a refresh every interval. Intervals under a second
// are not supported by the scheduler and are rejected, as are intervals
// over MaxRefresh.
func NewWatcher(clock Clock, loc *time.Location, infos []Info, every time.Duration, notify func(Snapshot), logger *zap.Logger) (*Watcher, error) {
	if every < time.Second || every > MaxRefresh {
		return nil, fmt.Errorf("refresh interval %s outside [1s, %s]", every, MaxRefresh)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		clock:  clock,
		loc:    loc,
		infos:  infos,
		notify: notify,
		logger: logger,
	}
	w.cron.Schedule(cron.Every(every), cron.FuncJob(w.tick))
	return w, nil
}

// Start evaluates once immediately, then on every interval.
func (w *Watcher) Start() {
	w.tick()
	w.cron.Start()
	w.logger.Debug("session watcher started")
}

// Stop cancels the recurring refresh and waits for an in-flight tick.
func (w *Watcher) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Debug("session watcher stopped", zap.Int("ticks", w.Ticks()))
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	w.Start()
	<-ctx.Done()
	w.Stop()
}

// Last returns the most recent snapshot.
func (w *Watcher) Last() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Ticks reports how many evaluations have run.
func (w *Watcher) Ticks() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}

func (w *Watcher) tick() {
	snap := Evaluate(w.clock, w.loc, w.infos)

	w.mu.Lock()
	changed := w.runs == 0 || snap.Now != w.last.Now
	w.last = snap
	w.runs++
	w.mu.Unlock()

	if changed {
		w.logger.Debug("session board refreshed",
			zap.String("now", snap.Now.String()),
			zap.Strings("active", snap.ActiveNames()))
	}
	if w.notify != nil {
		w.notify(snap)
	}
}

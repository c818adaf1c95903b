// File: cursor.go
// Role: Cursor state machine and its cancellable ticker loop.
// Determinism:
//   - Index transitions depend only on the call sequence and tick count.
// Concurrency:
//   - One mutex serialises every transition; ticks carry a generation and are
//     dropped when the generation moved on.
//   - A second mutex is taken before the first is released and held while
//     OnChange runs, so notifications arrive in transition order.

package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Cursor is a position within a dijkstra.StepLog. The zero value is not
// usable; call NewCursor.
type Cursor struct {
	mu       sync.Mutex
	notifyMu sync.Mutex // held across OnChange; acquired before mu is released
	opts     Options
	log   *dijkstra.StepLog
	state State
	index int

	gen    uint64        // bumped whenever a ticker is stopped or started
	ticker Ticker        // nil unless Playing
	stop   chan struct{} // closed to end the current run loop
}

// NewCursor returns an Empty cursor.
func NewCursor(opts ...Option) *Cursor {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cursor{opts: cfg}
}

// Load replaces the log, cancels any running ticker and rewinds to index 0
// in the Ready state.
func (c *Cursor) Load(l *dijkstra.StepLog) error {
	if l == nil {
		return ErrNilLog
	}

	c.mu.Lock()
	c.stopLocked()
	c.log = l
	c.index = 0
	c.state = Ready
	pos := c.positionLocked()
	c.opts.Logger.Debug("cursor loaded",
		slog.Int("len", pos.Len),
		slog.String("source", l.Source()),
		slog.String("target", l.Target()),
	)
	c.publishLocked(pos)

	return nil
}

// JumpTo moves the cursor to i clamped into [0, Len] and returns the new
// index. Ready becomes Paused; Playing keeps playing. No-op when Empty.
func (c *Cursor) JumpTo(i int) int {
	return c.move(func(int) int { return i })
}

// StepForward applies one more record.
func (c *Cursor) StepForward() int {
	return c.move(func(cur int) int { return cur + 1 })
}

// StepBackward un-applies the last record.
func (c *Cursor) StepBackward() int {
	return c.move(func(cur int) int { return cur - 1 })
}

// move applies next to the current index under the lock.
func (c *Cursor) move(next func(int) int) int {
	c.mu.Lock()
	if c.state == Empty {
		c.mu.Unlock()

		return 0
	}

	i := next(c.index)
	if i < 0 {
		i = 0
	}
	if n := c.log.Len(); i > n {
		i = n
	}
	c.index = i
	if c.state == Ready {
		c.state = Paused
	}
	pos := c.positionLocked()
	c.publishLocked(pos)

	return pos.Index
}

// Play starts advancing the index by one record every interval. The interval
// is raised to the configured minimum. Play on a Playing cursor is a no-op;
// on an Empty cursor it returns ErrNoLog.
func (c *Cursor) Play(interval time.Duration) error {
	c.mu.Lock()
	switch c.state {
	case Empty:
		c.mu.Unlock()

		return ErrNoLog
	case Playing:
		c.mu.Unlock()

		return nil
	}

	if interval < c.opts.MinInterval {
		interval = c.opts.MinInterval
	}
	c.gen++
	gen := c.gen
	t := c.opts.NewTicker(interval)
	stop := make(chan struct{})
	c.ticker, c.stop = t, stop
	c.state = Playing
	pos := c.positionLocked()
	c.opts.Logger.Debug("cursor playing",
		slog.Duration("interval", interval),
		slog.Int("index", pos.Index),
	)

	// The first tick blocks on mu, then on notifyMu, until Playing is out.
	go c.run(gen, t, stop)
	c.publishLocked(pos)

	return nil
}

// Pause stops the ticker. Idempotent.
func (c *Cursor) Pause() {
	c.mu.Lock()
	if c.state != Playing {
		c.mu.Unlock()

		return
	}
	c.stopLocked()
	c.state = Paused
	pos := c.positionLocked()
	c.opts.Logger.Debug("cursor paused", slog.Int("index", pos.Index))
	c.publishLocked(pos)
}

// Reset stops the ticker, drops the log and returns to Empty. Idempotent.
func (c *Cursor) Reset() {
	c.mu.Lock()
	if c.state == Empty {
		c.mu.Unlock()

		return
	}
	c.resetLocked()
	pos := c.positionLocked()
	c.opts.Logger.Debug("cursor reset")
	c.publishLocked(pos)
}

// EnsureFresh checks the loaded log against s. When the log was generated
// from a different snapshot the cursor is Reset and the dijkstra.ErrStaleLog
// error is returned. An Empty cursor is always fresh.
func (c *Cursor) EnsureFresh(s *core.Snapshot) error {
	if s == nil {
		return dijkstra.ErrNilSnapshot
	}

	c.mu.Lock()
	if c.log == nil {
		c.mu.Unlock()

		return nil
	}
	err := c.log.ValidFor(s)
	if err == nil {
		c.mu.Unlock()

		return nil
	}
	c.resetLocked()
	pos := c.positionLocked()
	c.opts.Logger.Debug("cursor reset on stale log", slog.String("err", err.Error()))
	c.publishLocked(pos)

	return err
}

// Position returns the current state, index and log length.
func (c *Cursor) Position() Position {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.positionLocked()
}

// Log returns the loaded log, or nil when Empty.
func (c *Cursor) Log() *dijkstra.StepLog {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.log
}

// run forwards ticks until stop is closed or tick reports the run is over.
func (c *Cursor) run(gen uint64, t Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.tick(gen) {
				return
			}
		}
	}
}

// tick advances one record for generation gen. It returns false when the
// run must end: the generation is stale or the end was reached.
func (c *Cursor) tick(gen uint64) bool {
	c.mu.Lock()
	if gen != c.gen || c.state != Playing {
		c.mu.Unlock()

		return false
	}

	n := c.log.Len()
	if c.index < n {
		c.index++
	}
	more := c.index < n
	if !more {
		c.stopLocked()
		c.state = Paused
	}
	pos := c.positionLocked()
	if !more {
		c.opts.Logger.Debug("cursor reached end", slog.Int("index", pos.Index))
	}
	c.publishLocked(pos)

	return more
}

// publishLocked delivers pos to OnChange. It takes notifyMu before
// releasing c.mu, so a later transition cannot overtake this notification.
// c.mu must be held; it is released on return.
func (c *Cursor) publishLocked(pos Position) {
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	c.opts.OnChange(pos)
}

// stopLocked cancels the current ticker, if any, and invalidates its
// generation. c.mu must be held.
func (c *Cursor) stopLocked() {
	c.gen++
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.stop)
	c.ticker, c.stop = nil, nil
}

// resetLocked returns to Empty. c.mu must be held.
func (c *Cursor) resetLocked() {
	c.stopLocked()
	c.log = nil
	c.index = 0
	c.state = Empty
}

func (c *Cursor) positionLocked() Position {
	return Position{State: c.state, Index: c.index, Len: c.log.Len()}
}

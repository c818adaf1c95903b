// File: types.go
// Role: Sentinel errors, State, Position, Ticker and Cursor options.

package playback

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// Sentinel errors returned by Cursor.
var (
	// ErrNilLog indicates Load was called with a nil log.
	ErrNilLog = errors.New("playback: step log is nil")

	// ErrNoLog indicates an operation that needs a loaded log ran on an Empty cursor.
	ErrNoLog = errors.New("playback: no step log loaded")
)

// DefaultMinInterval is the shortest interval Play accepts.
const DefaultMinInterval = 30 * time.Millisecond

// State is the cursor's play mode.
type State int

const (
	// Empty – no log loaded.
	Empty State = iota
	// Ready – log loaded, index 0.
	Ready
	// Paused – log loaded, timer stopped.
	Paused
	// Playing – timer running.
	Playing
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Position is an observable snapshot of a cursor.
type Position struct {
	State State
	Index int // number of applied records
	Len   int // length of the loaded log, 0 when Empty
}

// AtEnd reports whether every record has been applied.
func (p Position) AtEnd() bool { return p.State != Empty && p.Index == p.Len }

// Ticker is the clock Play runs on. *time.Ticker satisfies it through
// NewTimeTicker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// timeTicker adapts *time.Ticker to Ticker.
type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the default ticker factory.
func NewTimeTicker(d time.Duration) Ticker { return timeTicker{t: time.NewTicker(d)} }

// Options configures a Cursor.
type Options struct {
	OnChange    func(Position)
	NewTicker   func(time.Duration) Ticker
	MinInterval time.Duration
	Logger      *slog.Logger
}

// Option represents a functional option for NewCursor.
type Option func(*Options)

// WithOnChange registers a hook called after every Position change, in the
// order the changes happened. fn must not call Cursor methods. A nil fn is
// ignored.
func WithOnChange(fn func(Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChange = fn
		}
	}
}

// WithTicker replaces the ticker factory. Panics if factory is nil.
func WithTicker(factory func(time.Duration) Ticker) Option {
	if factory == nil {
		panic("playback: WithTicker(nil)")
	}

	return func(o *Options) {
		o.NewTicker = factory
	}
}

// WithMinInterval sets the lower bound for Play intervals.
// Panics if d <= 0.
func WithMinInterval(d time.Duration) Option {
	if d <= 0 {
		panic("playback: WithMinInterval must be > 0")
	}

	return func(o *Options) {
		o.MinInterval = d
	}
}

// WithLogger sets the logger for transition records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options NewCursor starts from.
func DefaultOptions() Options {
	return Options{
		OnChange:    func(Position) {},
		NewTicker:   NewTimeTicker,
		MinInterval: DefaultMinInterval,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

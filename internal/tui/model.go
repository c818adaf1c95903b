// Package tui is the interactive scrubber behind `pathtrace view`.
//
// A Model owns a playback.Cursor and a status.Projector built from the same
// log. The cursor reports every transition through OnChange; the model turns
// those into FrameMsg values via a buffered channel so ticker-driven advances
// reach the bubbletea loop without blocking the cursor.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/playback"
	"github.com/katalvlaran/pathtrace/status"
)

const (
	// DefaultInterval is the initial play interval.
	DefaultInterval = 400 * time.Millisecond
	// MaxInterval bounds the slowest play speed.
	MaxInterval = 5 * time.Second

	frameBuffer = 64
)

// ErrNoLoader is returned on reload when Config.Load is nil.
var ErrNoLoader = errors.New("tui: no graph loader configured")

// Config configures the scrubber.
type Config struct {
	// Source and Target are passed to dijkstra.Trace on every (re)generation.
	Source string
	Target string

	// Interval is the initial play interval, DefaultInterval when zero.
	Interval time.Duration

	// Load re-reads the graph; used by the reload key and on GraphChangedMsg.
	Load func() (*core.Snapshot, error)

	// Title is shown in the header, usually the graph file name.
	Title string

	Logger *slog.Logger

	// CursorOptions are appended after the model's own cursor options.
	CursorOptions []playback.Option
}

// DefaultConfig returns a config with the default interval and a discarding logger.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// FrameMsg carries a cursor transition into the update loop.
type FrameMsg playback.Position

// GraphChangedMsg asks the model to re-read the graph and regenerate the log
// when the loaded one went stale.
type GraphChangedMsg struct{}

// Model is the bubbletea model of the scrubber.
type Model struct {
	cfg    Config
	snap   *core.Snapshot
	proj   *status.Projector
	cursor *playback.Cursor
	frames chan playback.Position

	interval time.Duration
	keys     keyMap
	help     help.Model

	notice   string
	err      error
	width    int
	quitting bool
}

// New traces s from cfg.Source and returns a model positioned at index 0.
func New(s *core.Snapshot, cfg Config) (Model, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		cfg:      cfg,
		frames:   make(chan playback.Position, frameBuffer),
		interval: cfg.Interval,
		keys:     defaultKeys(),
		help:     help.New(),
	}

	frames := m.frames
	opts := append([]playback.Option{
		playback.WithLogger(cfg.Logger),
		playback.WithOnChange(func(p playback.Position) {
			// Never block the cursor; the view re-reads its position anyway.
			select {
			case frames <- p:
			default:
			}
		}),
	}, cfg.CursorOptions...)
	m.cursor = playback.NewCursor(opts...)

	if err := m.regenerate(s); err != nil {
		return Model{}, err
	}

	return m, nil
}

// Init starts listening for cursor frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

// waitForFrame blocks until the cursor reports a transition.
func waitForFrame(frames <-chan playback.Position) tea.Cmd {
	return func() tea.Msg {
		return FrameMsg(<-frames)
	}
}

// Update handles key presses, cursor frames and graph changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case FrameMsg:
		return m, waitForFrame(m.frames)

	case GraphChangedMsg:
		m.onGraphChanged()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cursor.Reset()

		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.cursor.StepBackward()

	case key.Matches(msg, m.keys.Forward):
		m.cursor.StepForward()

	case key.Matches(msg, m.keys.First):
		m.cursor.JumpTo(0)

	case key.Matches(msg, m.keys.Last):
		m.cursor.JumpTo(m.cursor.Position().Len)

	case key.Matches(msg, m.keys.Play):
		m.togglePlay()

	case key.Matches(msg, m.keys.Faster):
		m.setInterval(m.interval / 2)

	case key.Matches(msg, m.keys.Slower):
		m.setInterval(m.interval * 2)

	case key.Matches(msg, m.keys.Reload):
		m.reload()
	}

	return m, nil
}

func (m *Model) togglePlay() {
	if m.cursor.Position().State == playback.Playing {
		m.cursor.Pause()

		return
	}
	if err := m.cursor.Play(m.interval); err != nil {
		m.err = err
	}
}

// setInterval clamps d and restarts playback at the new speed if playing.
func (m *Model) setInterval(d time.Duration) {
	d = max(d, playback.DefaultMinInterval)
	d = min(d, MaxInterval)
	m.interval = d

	if m.cursor.Position().State != playback.Playing {
		return
	}
	m.cursor.Pause()
	if err := m.cursor.Play(m.interval); err != nil {
		m.err = err
	}
}

// reload re-reads the graph and always regenerates the log.
func (m *Model) reload() {
	s, err := m.loadGraph()
	if err != nil {
		m.err = err

		return
	}
	if err = m.regenerate(s); err != nil {
		m.err = err

		return
	}
	m.notice = "reloaded"
}

// onGraphChanged regenerates the log when the current one is stale, or when
// there is none because an earlier regeneration failed.
func (m *Model) onGraphChanged() {
	s, err := m.loadGraph()
	if err != nil {
		m.err = err

		return
	}

	if m.proj != nil {
		err = m.cursor.EnsureFresh(s)
		switch {
		case err == nil:
			return
		case !errors.Is(err, dijkstra.ErrStaleLog):
			m.err = err

			return
		}
	}

	// The cursor is Empty from here on; drop the projection of the old log
	// so nothing renders it next to a regeneration error.
	if err = m.regenerate(s); err != nil {
		m.cursor.Reset()
		m.proj, m.notice, m.err = nil, "", err

		return
	}
	m.notice = "graph changed; trace regenerated"
}

func (m *Model) loadGraph() (*core.Snapshot, error) {
	if m.cfg.Load == nil {
		return nil, ErrNoLoader
	}

	return m.cfg.Load()
}

// regenerate traces s and loads the new log into the cursor.
func (m *Model) regenerate(s *core.Snapshot) error {
	l, err := dijkstra.Trace(s, dijkstra.Source(m.cfg.Source), dijkstra.Target(m.cfg.Target))
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	proj, err := status.NewProjector(s, l)
	if err != nil {
		return err
	}
	if err = m.cursor.Load(l); err != nil {
		return err
	}

	m.snap, m.proj, m.err = s, proj, nil
	m.cfg.Logger.Debug("trace generated",
		slog.Int("steps", l.Len()),
		slog.String("fingerprint", s.Fingerprint()),
	)

	return nil
}

// Cursor exposes the underlying cursor, mainly for shutdown.
func (m Model) Cursor() *playback.Cursor { return m.cursor }

// Current returns the projected view at the cursor position, or the zero
// View when no trace is loaded.
func (m Model) Current() status.View {
	if m.proj == nil {
		return status.View{}
	}

	return m.proj.At(m.cursor.Position().Index)
}

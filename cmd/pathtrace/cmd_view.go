package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/internal/graphfile"
	"github.com/katalvlaran/pathtrace/internal/tui"
)

func newViewCmd(a *app) *cobra.Command {
	var (
		gf       graphFlags
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Scrub through the trace interactively",
		Long: `Open an interactive view of the trace.

Keys:
  ←/→ or h/l   step back / forward
  space        play / pause
  home / end   jump to first / last step
  + / -        faster / slower
  r            reload the graph file
  q            quit

With --watch, saving the graph file regenerates the trace when it changed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("interval") {
				d, err := a.cfg.PlayInterval()
				if err != nil {
					return err
				}
				interval = d
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runView(ctx, a, &gf, interval, watch)
		},
	}
	gf.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate the trace when the graph file changes")
	cmd.Flags().DurationVar(&interval, "interval", tui.DefaultInterval, "initial play interval")

	return cmd
}

func runView(ctx context.Context, a *app, gf *graphFlags, interval time.Duration, watch bool) error {
	snap, err := gf.load()
	if err != nil {
		return err
	}

	m, err := tui.New(snap, tui.Config{
		Source:   gf.from,
		Target:   gf.to,
		Interval: interval,
		Load:     gf.load,
		Title:    filepath.Base(gf.path),
		Logger:   a.log,
	})
	if err != nil {
		return err
	}
	defer m.Cursor().Reset()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch {
		go func() {
			err := graphfile.Watch(ctx, gf.path, graphfile.DefaultDebounce, func() {
				a.log.Debug("graph file changed", slog.String("path", gf.path))
				p.Send(tui.GraphChangedMsg{})
			})
			if err != nil {
				a.log.Warn("watch stopped", slog.String("path", gf.path), slog.String("err", err.Error()))
			}
		}()
	}

	_, err = p.Run()

	return err
}

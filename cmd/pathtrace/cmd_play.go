package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/playback"
	"github.com/katalvlaran/pathtrace/status"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		gf       graphFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay the trace on a timer",
		Long: `Replay the trace through a playback cursor, printing one line per step.

The interval is clamped to at least 30ms. Interrupt with Ctrl-C.

Examples:
  pathtrace play -g city.yaml --from A --to F
  pathtrace play -g city.yaml --from A --interval 100ms`,
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

			return runPlay(ctx, a, &gf, interval, cmd.OutOrStdout())
		},
	}
	gf.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 400*time.Millisecond, "time between steps")

	return cmd
}

// printer writes the projected description of every new cursor index and
// closes done once playback pauses at the end of the log.
type printer struct {
	mu   sync.Mutex
	w    io.Writer
	proj *status.Projector
	last int

	done chan struct{}
	once sync.Once
}

func (p *printer) onChange(pos playback.Position) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pos.State != playback.Empty && pos.Index != p.last {
		p.last = pos.Index
		v := p.proj.At(pos.Index)
		fmt.Fprintf(p.w, "[%d/%d] %s\n", pos.Index, pos.Len, v.Description)
	}
	if pos.State == playback.Paused && pos.AtEnd() {
		p.once.Do(func() { close(p.done) })
	}
}

func runPlay(ctx context.Context, a *app, gf *graphFlags, interval time.Duration, w io.Writer) error {
	snap, l, err := gf.trace(a.log)
	if err != nil {
		return err
	}
	proj, err := status.NewProjector(snap, l)
	if err != nil {
		return err
	}

	p := &printer{w: w, proj: proj, done: make(chan struct{})}
	cur := playback.NewCursor(
		playback.WithLogger(a.log),
		playback.WithOnChange(p.onChange),
	)
	defer cur.Reset()

	if err = cur.Load(l); err != nil {
		return err
	}
	if err = cur.Play(interval); err != nil {
		return err
	}

	select {
	case <-p.done:
		_, err = fmt.Fprintln(w, summary(snap, l))

		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/internal/graphfile"
)

// app is the state shared by every subcommand once the root has run its
// pre-run hook.
type app struct {
	configPath string
	logLevel   string

	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "pathtrace",
		Short: "Trace and replay Dijkstra's shortest-path algorithm",
		Long: `pathtrace records every step Dijkstra's algorithm takes over a weighted,
undirected graph and lets you replay the trace.

Graphs are JSON or YAML documents of the form
  {nodes: [{id, label}], edges: [{id, from, to, weight}]}

Configuration:
  --config FILE          YAML (or JSON) file with log_level, interval, format
  PATHTRACE_CONFIG       config file path when --config is not given
  PATHTRACE_LOG_LEVEL    overrides log_level
  PATHTRACE_INTERVAL     overrides interval
  PATHTRACE_FORMAT       overrides format`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (YAML or JSON)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newTraceCmd(a),
		newPlayCmd(a),
		newViewCmd(a),
		newDemoCmd(a),
	)

	return root
}

// setup loads the config and builds the stderr logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("PATHTRACE_CONFIG")
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})).
		With(slog.String("run", uuid.NewString()[:8]))
	a.log.Debug("config loaded",
		slog.String("path", path),
		slog.String("interval", cfg.Interval),
		slog.String("format", cfg.Format),
	)

	return nil
}

// =============================================================================
// SHARED GRAPH FLAGS
// =============================================================================

// graphFlags selects the graph file and the endpoints of a trace.
type graphFlags struct {
	path string
	from string
	to   string
}

func (g *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&g.path, "graph", "g", "", "graph file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&g.from, "from", "", "start node ID")
	cmd.Flags().StringVar(&g.to, "to", "", "end node ID (empty: all distances)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
}

func (g *graphFlags) load() (*core.Snapshot, error) {
	return graphfile.Load(g.path)
}

// trace loads the graph and generates its step log.
func (g *graphFlags) trace(log *slog.Logger) (*core.Snapshot, *dijkstra.StepLog, error) {
	snap, err := g.load()
	if err != nil {
		return nil, nil, err
	}
	l, err := dijkstra.Trace(snap, dijkstra.Source(g.from), dijkstra.Target(g.to))
	if err != nil {
		return nil, nil, fmt.Errorf("trace %s: %w", g.path, err)
	}
	log.Debug("trace generated",
		slog.String("graph", g.path),
		slog.Int("nodes", snap.Len()),
		slog.Int("steps", l.Len()),
		slog.String("fingerprint", l.Fingerprint()),
	)

	return snap, l, nil
}

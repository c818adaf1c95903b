package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/status"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTraceCmd(a *app) *cobra.Command {
	var (
		gf     graphFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every step of the trace",
		Long: `Run Dijkstra's algorithm from --from and print the step log.

Without --to the trace ends with the final distance table; with --to it ends
with the shortest path or a no-path record.

Examples:
  pathtrace trace -g city.yaml --from A --to F
  pathtrace trace -g city.yaml --from A --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			snap, l, err := gf.trace(a.log)
			if err != nil {
				return err
			}

			return writeTrace(cmd.OutOrStdout(), format, snap, l)
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table or json")

	return cmd
}

func writeTrace(w io.Writer, format string, snap *core.Snapshot, l *dijkstra.StepLog) error {
	switch format {
	case formatTable:
		return writeTable(w, snap, l)
	case formatJSON:
		return writeJSON(w, snap, l)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatJSON)
	}
}

// =============================================================================
// TABLE OUTPUT
// =============================================================================

func writeTable(w io.Writer, snap *core.Snapshot, l *dijkstra.StepLog) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "KIND", "STEP", "DISTANCES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for i, rec := range l.Steps() {
		t.Row(
			strconv.Itoa(i+1),
			string(rec.Kind),
			status.Describe(snap, rec),
			formatTableRow(snap, rec.Snapshot),
		)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary(snap, l))

	return err
}

func formatTableRow(snap *core.Snapshot, t dijkstra.DistanceTable) string {
	parts := make([]string, t.Len())
	for i := range t.Len() {
		id, d := t.At(i)
		parts[i] = snap.Label(id) + "=" + dijkstra.FormatDistance(d)
	}

	return strings.Join(parts, " ")
}

// summary is the one-line outcome of a log.
func summary(snap *core.Snapshot, l *dijkstra.StepLog) string {
	term := l.Terminal()
	switch term.Kind {
	case dijkstra.KindPath:
		labels := make([]string, len(term.Path))
		for i, id := range term.Path {
			labels[i] = snap.Label(id)
		}

		return fmt.Sprintf("path: %s (total=%s, %d steps)",
			strings.Join(labels, " → "), dijkstra.FormatDistance(term.Total), l.Len())
	case dijkstra.KindNoPath:
		return fmt.Sprintf("no path from %s to %s (%d steps)",
			snap.Label(l.Source()), snap.Label(l.Target()), l.Len())
	default:
		return fmt.Sprintf("distances: %s (%d steps)", formatTableRow(snap, term.Table), l.Len())
	}
}

// =============================================================================
// JSON OUTPUT
// =============================================================================

type traceJSON struct {
	Source      string           `json:"source"`
	Target      string           `json:"target,omitempty"`
	Fingerprint string           `json:"fingerprint"`
	Steps       []map[string]any `json:"steps"`
}

func writeJSON(w io.Writer, snap *core.Snapshot, l *dijkstra.StepLog) error {
	out := traceJSON{
		Source:      l.Source(),
		Target:      l.Target(),
		Fingerprint: l.Fingerprint(),
		Steps:       make([]map[string]any, 0, l.Len()),
	}
	for i, rec := range l.Steps() {
		out.Steps = append(out.Steps, stepJSON(i, snap, rec))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// stepJSON flattens rec to the fields its kind defines. Unreached
// distances become null.
func stepJSON(i int, snap *core.Snapshot, rec dijkstra.Step) map[string]any {
	m := map[string]any{
		"index":       i,
		"kind":        string(rec.Kind),
		"description": status.Describe(snap, rec),
		"snapshot":    tableJSON(rec.Snapshot),
	}

	switch rec.Kind {
	case dijkstra.KindSelect:
		m["node"], m["dist"] = rec.Node, number(rec.Dist)
	case dijkstra.KindConsider:
		m["from"], m["to"] = rec.From, rec.To
		m["alt"], m["old"] = number(rec.Alt), number(rec.Old)
	case dijkstra.KindUpdate:
		m["node"], m["new_dist"], m["predecessor"] = rec.Node, number(rec.NewDist), rec.Predecessor
	case dijkstra.KindVisited:
		m["node"] = rec.Node
	case dijkstra.KindPath:
		m["path"], m["total"] = rec.Path, number(rec.Total)
	case dijkstra.KindDistances:
		m["table"] = tableJSON(rec.Table)
	}

	return m
}

func tableJSON(t dijkstra.DistanceTable) map[string]any {
	m := make(map[string]any, t.Len())
	for i := range t.Len() {
		id, d := t.At(i)
		m[id] = number(d)
	}

	return m
}

func number(d float64) any {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return nil
	}

	return d
}

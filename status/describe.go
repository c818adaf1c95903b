package status

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Describe renders rec as one line, naming nodes by their labels in s.
// A nil s falls back to node IDs.
func Describe(s *core.Snapshot, rec dijkstra.Step) string {
	label := func(id string) string {
		if s == nil {
			return id
		}

		return s.Label(id)
	}
	d := dijkstra.FormatDistance

	switch rec.Kind {
	case dijkstra.KindSelect:
		return fmt.Sprintf("Selected node %s (dist=%s)", label(rec.Node), d(rec.Dist))
	case dijkstra.KindConsider:
		return fmt.Sprintf("Considering edge %s → %s, alt=%s (old=%s)",
			label(rec.From), label(rec.To), d(rec.Alt), d(rec.Old))
	case dijkstra.KindUpdate:
		return fmt.Sprintf("Updated %s: dist=%s via %s", label(rec.Node), d(rec.NewDist), label(rec.Predecessor))
	case dijkstra.KindVisited:
		return "Marked visited " + label(rec.Node)
	case dijkstra.KindPath:
		names := make([]string, len(rec.Path))
		for i, id := range rec.Path {
			names[i] = label(id)
		}

		return fmt.Sprintf("Found path: %s (total=%s)", strings.Join(names, " → "), d(rec.Total))
	case dijkstra.KindNoPath:
		return "No path to target could be found."
	case dijkstra.KindDistances:
		return "Final distances computed."
	default:
		return string(rec.Kind)
	}
}

// Package pathtrace records Dijkstra's shortest-path algorithm as a replayable
// trace and projects any position of that trace into what a viewer shows.
//
// 🚀 What is pathtrace?
//
//	A deterministic step-trace engine in three layers:
//		• dijkstra/ — StepLogGenerator: one immutable record per decision
//		• playback/ — PlaybackCursor: scrub, jump, play/pause over a log
//		• status/   — StatusProjector: node statuses, highlighted edge,
//		              distances, result and pseudocode line at an index
//
// ✨ Why pathtrace?
//
//   - Deterministic – the same snapshot and endpoints always give the same log
//   - Replayable – any index is a pure function of (snapshot, log, index)
//   - Stale-safe – a log is bound to the fingerprint of its snapshot
//   - Small surface – functional options, sentinel errors, no globals
//
// Supporting packages:
//
//	core/               — authoring Graph (undo history) and immutable Snapshot
//	builder/            — deterministic fixtures: path, cycle, star, wheel, grid, random
//	internal/graphfile/ — JSON/YAML graph documents and a debounced file watcher
//	internal/tui/       — interactive scrubber (bubbletea)
//	cmd/pathtrace/      — trace | play | view | demo
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      5   2
//	       \  │
//	         C
//
//	trace from A to C: select A, relax B (1) and C (5), select B,
//	relax C (3), select C, path A → B → C with total 3.
//
//	go install github.com/katalvlaran/pathtrace/cmd/pathtrace@latest
package pathtrace

package playback_test

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/playback"
)

// ExampleCursor scrubs a log by hand; out-of-range jumps are clamped.
func ExampleCursor() {
	s := core.MustSnapshot(
		[]core.Node{{ID: "A"}, {ID: "B"}},
		[]core.Edge{{ID: "ab", From: "A", To: "B", Weight: 2}},
	)
	log, _ := dijkstra.Trace(s, dijkstra.Source("A"), dijkstra.Target("B"))

	c := playback.NewCursor()
	_ = c.Load(log)
	fmt.Println(c.Position().State)

	c.StepForward()
	c.StepForward()
	fmt.Println(c.Position().Index, c.Position().State)

	fmt.Println(c.JumpTo(100) == log.Len())
	// Output:
	// ready
	// 2 paused
	// true
}

// Command pathtrace traces Dijkstra's shortest-path algorithm over a graph
// file and replays the trace step by step.
//
//	pathtrace demo --shape grid -n 4 -o grid.yaml
//	pathtrace trace -g grid.yaml --from 0,0 --to 3,3
//	pathtrace play -g grid.yaml --from 0,0 --to 3,3 --interval 200ms
//	pathtrace view -g grid.yaml --from 0,0 --to 3,3 --watch
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package islands_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netcheck/bfs"
	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/islands"
)

// ExampleProbeDetector splits a walk network with an isolated node.
//
//	1 - 2 - 3     4
func ExampleProbeDetector() {
	b := core.NewBuilder()
	_ = b.AddEdge(1, 2, 1, core.WithBidirectional())
	_ = b.AddEdge(2, 3, 1, core.WithBidirectional())
	_ = b.AddNode(4)
	g, _ := b.Build()

	is, _ := islands.NewProbeDetector(bfs.NewEngine()).Detect(context.Background(), g, g.AllNodes())
	fmt.Println(is, islands.Summarize(is).Disconnected)
	// Output:
	// [[1 2 3] [4]] 1
}

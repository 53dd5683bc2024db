// Package islands finds disconnected clusters of nodes in a network graph.
//
// Two detectors implement Detector:
//
//   - ProbeDetector repeatedly picks the first unassigned candidate, asks a
//     PathEngine (bfs.Engine, dijkstra.Engine) which nodes it reaches, and
//     turns the reached candidates into one island. No all-pairs work is
//     needed. On directed graphs the partition depends on candidate order.
//   - SCCDetector groups candidates by strongly connected component and is
//     order independent. Use it when mutual reachability is what matters.
//
// Both return Islands: a slice indexed by discovery order whose members are
// listed in graph order. Every candidate appears in exactly one island and a
// singleton island is an isolated node. Summarize condenses a result for
// reports.
//
// Example:
//
//	det := islands.NewProbeDetector(bfs.NewEngine())
//	is, err := det.Detect(ctx, g, g.AllNodes())
//	if err != nil { … }
//	if !is.Connected() {
//		fmt.Println(islands.Summarize(is).Disconnected, "nodes cut off")
//	}
package islands

// Package netcheck checks that the walk, auto and transit layers of a
// transportation supply are fully connected.
//
// Layout:
//
//	core/       immutable dense-index graph with link IDs and banned turns
//	bfs/        breadth-first reachability and its path engine (default)
//	dfs/        depth-first reachability and its path engine
//	dijkstra/   cost-ordered search, turn-aware engine and parallel skim
//	islands/    probe and SCC island detectors over any path engine
//	network/    supply model, HCL load/write, per-mode graph building, CEL link filters
//	checker/    per-mode checks, full path search, findings
//	report/     summaries and tables
//	builder/    synthetic supply generators
//	cmd/netcheck  the command line front end
//
// A typical run loads a supply, builds one graph per mode and hands them
// to a checker:
//
//	s, _ := network.LoadHCL(afero.NewOsFs(), "supply.hcl")
//	walk, _ := s.Build(network.ModeWalk)
//	c := checker.New(checker.WithNetwork(walk))
//	_ = c.Run(ctx)
//	fmt.Println(c.WalkIslands)
package netcheck

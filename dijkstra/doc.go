// Package dijkstra provides cost-based shortest-path trees over a core.Graph,
// and the two heavier building blocks of auto connectivity checks.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost tree from a single source node.
//   - WithTurnRestrictions labels arcs instead of nodes so that banned turns
//     (core.Builder.BanTurn) and, optionally, U-turns are honoured. This is the
//     path engine of the turn-aware full path search.
//   - Engine wraps either mode in the prepare / compute / reset protocol.
//   - Skim runs the search from every node in parallel (errgroup, bounded by
//     WithWorkers) and reduces the distances to a single total. A +Inf total
//     means at least one pair is disconnected; which pair is not recorded.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrNodeNotFound, ErrBadMaxDistance,
//     ErrBadInfThreshold, ErrNotPrepared.
//   - Context errors are returned unwrapped.
package dijkstra

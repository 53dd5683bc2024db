// Package checker runs connectivity checks over the walk, auto and transit
// layers of a supply model and records what it finds.
//
// A Checker holds one network.ModeNetwork per mode (WithNetwork) and exposes
// one entry point per mode plus Run:
//
//   - CheckWalk: islands over every walk node.
//   - CheckAuto: islands over every auto node; with WithTurnRestrictions a
//     turn-aware path tree from every node (Disconnections); with
//     WithHighMemory a parallel skim that only says yes or no.
//   - CheckTransit: islands over the transit stops.
//
// One island means the network is fully connected and is logged at INFO.
// More islands are logged at WARN and recorded as a Finding listing the
// translated nodes outside the largest island. A mode without a network, or
// without candidate nodes, is skipped silently.
//
// Findings are not errors. HasCriticalErrors and Err let the caller decide
// whether they should fail a pipeline; Err is marked with ErrDisconnected:
//
//	if err := c.Run(ctx); err != nil { … }     // engine or context failure
//	if errors.Is(c.Err(), checker.ErrDisconnected) { … }
package checker

// Package routing implements the weight model, the backward Dijkstra
// single-path search and the Yen K-shortest-paths enumerator. It is a
// pure, synchronous library: no I/O, no persistence, no goroutine
// scheduling beyond what the caller's context.Context drives for
// cancellation.
//
//	routing/         weight model, backward Dijkstra, Yen, params, errors
//	routing/route/   Hop assembly and end-to-end route validation
//
// Logging follows the Lightning-node convention found throughout the
// retrieved corpus (one logger per package, a no-op default, a UseLogger
// hook) rather than calling a global logger directly.
package routing

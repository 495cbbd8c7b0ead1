package routing

import "errors"

// Sentinel errors returned by FindRoute and the search it is built on.
var (
	// ErrCannotRouteToSelf indicates source and target are the same
	// node.
	ErrCannotRouteToSelf = errors.New("routing: source and target are the same node")

	// ErrRouteNotFound indicates no feasible path exists under the
	// given constraints and blacklists. Amount-infeasibility (every
	// candidate edge's htlc bounds rejecting the amount) surfaces as
	// this same error for API compatibility with callers that only
	// branch on "found" vs "not found".
	ErrRouteNotFound = errors.New("routing: route not found")

	// ErrCancelled indicates the caller's context was cancelled before
	// the search completed. No partial route is ever returned.
	ErrCancelled = errors.New("routing: search cancelled")
)

package routing

import "github.com/btcsuite/btclog"

// log is this package's subsystem logger. It is disabled until the host
// application calls UseLogger, following the per-package logger pattern
// the rest of the node codebase uses (one logger var, one UseLogger hook).
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by this package's search
// code. Intended to be called once during application startup, before
// any search runs concurrently with it.
func UseLogger(logger btclog.Logger) {
	log = logger
}

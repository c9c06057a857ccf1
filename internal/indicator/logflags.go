package indicator

import "sync/atomic"

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled toggles per-move and per-snap debug lines for every
// Controller in the process.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

// TraceLoggingEnabled reports the current trace flag.
func TraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}

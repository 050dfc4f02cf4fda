package engine

import (
	"fmt"
	"io"
	"sync/atomic"
	"unsafe"
)

// Severity is a debug-trace verbosity threshold, mirroring the original's
// JSON_DEBUG levels.
type Severity int32

const (
	// SeverityOff disables tracing entirely; this is the default and
	// costs one atomic load per would-be trace call.
	SeverityOff Severity = iota
	SeverityShallow
	SeverityDeep
)

var traceLevel int32 // atomic Severity
var traceWriter unsafe.Pointer // atomic *io.Writer

// EnableDebug installs a process-wide, best-effort trace sink at the given
// severity, writing to w. Passing SeverityOff (or a nil w) disables
// tracing. This is a runtime-switch generalization of the original's
// compile-time #ifdef DEBUG_ENABLE guard: when disabled, the parse path
// performs no observable side effect beyond a single atomic load.
func EnableDebug(level Severity, w io.Writer) {
	atomic.StoreInt32(&traceLevel, int32(level))
	if w == nil {
		atomic.StorePointer(&traceWriter, nil)
		return
	}
	atomic.StorePointer(&traceWriter, unsafe.Pointer(&w))
}

func currentSeverity() Severity {
	return Severity(atomic.LoadInt32(&traceLevel))
}

func trace(level Severity, format string, args ...any) {
	if currentSeverity() < level {
		return
	}
	p := atomic.LoadPointer(&traceWriter)
	if p == nil {
		return
	}
	w := *(*io.Writer)(p)
	fmt.Fprintf(w, format+"\n", args...)
}

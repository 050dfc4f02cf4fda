package fixjson

import (
	"io"

	"github.com/solvire/fixjson/internal/engine"
)

// Severity is a debug-trace verbosity threshold.
type Severity = engine.Severity

const (
	SeverityOff     = engine.SeverityOff
	SeverityShallow = engine.SeverityShallow
	SeverityDeep    = engine.SeverityDeep
)

// EnableDebug installs a process-wide, best-effort trace sink at the given
// severity, writing to w. Passing SeverityOff (or a nil w) disables
// tracing. When disabled, ParseObject and ParseArray perform no observable
// side effect beyond a single atomic load, generalizing the original
// library's compile-time DEBUG_ENABLE switch into a runtime one.
func EnableDebug(level Severity, w io.Writer) {
	engine.EnableDebug(level, w)
}

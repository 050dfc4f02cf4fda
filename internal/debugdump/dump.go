// Package debugdump renders a parsed destination struct back to JSON for
// human inspection after a parse has already completed. Its only caller is
// the demo CLI's -dump flag; the engine's debug-trace sink does not use it,
// and nothing in this package runs on the parsing path.
package debugdump

import (
	"io"

	"github.com/goccy/go-json"
)

// Dump renders v as indented JSON to w.
func Dump(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

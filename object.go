package fixjson

import "github.com/solvire/fixjson/internal/engine"

// ParseObject parses a `{ ... }` form at the start of input against
// schema, writing each recognized attribute's value to its schema-declared
// destination. On success it returns the offset just past the consumed
// document, including any trailing whitespace. ParseObject writes only into
// the destinations the schema names, but the call is not allocation-free:
// attribute names and some value tokens are copied into Go strings while
// scanning.
func ParseObject(input []byte, schema *ObjectSchema) (int, error) {
	return engine.ParseObject(input, schema)
}

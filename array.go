package fixjson

import "github.com/solvire/fixjson/internal/engine"

// ParseArray parses a `[ ... ]` form at the start of input against schema,
// writing each element into its destination bank and, if schema.Count is
// set, recording how many elements were read. On success it returns the
// offset just past the consumed document, including any trailing
// whitespace. ParseArray writes only into the destination banks the schema
// names, but the call is not allocation-free: integer and boolean elements
// (and the attribute names of object elements) are copied into Go strings
// while scanning.
func ParseArray(input []byte, schema *ArraySchema) (int, error) {
	return engine.ParseArray(input, schema)
}

package fixjson

import "github.com/solvire/fixjson/internal/engine"

// ArrayMode selects how an array-of-objects is materialized: as parallel
// per-field destination arrays, or as a flat array of caller structs
// addressed by byte offset.
type ArrayMode = engine.ArrayMode

const (
	ArrayScalar       = engine.ArrayScalar
	ArrayStructObject = engine.ArrayStructObject
)

// StringDest is a fixed-capacity character buffer a string-kind attribute
// is copied into, NUL-terminated, on a successful parse.
type StringDest = engine.StringDest

// StringArrayDest is the destination bank for an array of strings.
type StringArrayDest = engine.StringArrayDest

// AttrSchema binds one attribute name to a kind, a destination, and
// optional modifiers. Its fields are documented on the engine type it
// aliases; most callers build these as struct literals rather than
// through the builder methods below, which exist for the ArraySchema case
// where a few fields benefit from chained, self-documenting setup.
type AttrSchema = engine.AttrSchema

// ObjectSchema is an ordered list of attribute entries describing one
// `{ ... }` form.
type ObjectSchema = engine.ObjectSchema

// ArraySchema declares the shape of a `[ ... ]` form.
type ArraySchema = engine.ArraySchema

// NewArraySchema starts a fluent ArraySchema build, grounded in the same
// chained-setup idiom the teacher's array builder uses (dsl/array.go),
// adapted here to configure a fixed-extent destination rather than a
// validating element schema.
func NewArraySchema(element Kind) *ArraySchema {
	return &ArraySchema{Element: element}
}

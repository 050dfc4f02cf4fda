// Package engine implements the byte-at-a-time state machines that parse a
// restricted JSON dialect directly into caller-owned, fixed-extent storage.
// The parse path writes only into destinations the caller already owns; it
// is not allocation-free, since scanned attribute names and some value
// tokens are copied into Go strings along the way.
package engine

import "fmt"

// Kind is the closed set of value kinds the parser recognizes. Each kind
// has a fixed storage footprint at its destination.
type Kind int

const (
	KindInteger Kind = iota
	KindUinteger
	KindShort
	KindUshort
	KindReal
	KindString
	KindBoolean
	KindCharacter
	KindTime
	KindObject
	KindStructObject
	KindArray
	KindCheck
	KindIgnore
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindUinteger:
		return "uinteger"
	case KindShort:
		return "short"
	case KindUshort:
		return "ushort"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindCharacter:
		return "character"
	case KindTime:
		return "time"
	case KindObject:
		return "object"
	case KindStructObject:
		return "structobject"
	case KindArray:
		return "array"
	case KindCheck:
		return "check"
	case KindIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EnumEntry maps a quoted symbolic name to the integer stored on a match.
type EnumEntry struct {
	Name  string
	Value int64
}

// Default carries the default value written to a destination before a
// parse begins, in the union slot matching the schema entry's Kind.
type Default struct {
	Int  int64
	Uint uint64
	Real float64
	Bool bool
	Char byte
}

// Status is the closed set of diagnostic codes the parser returns. The
// numeric values mirror the original C library's JSON_ERR_* constants so
// that callers porting templates from that library keep the same codes,
// including the original's conflation of "quoted where unquoted expected"
// and "unquoted where quoted expected" under a single value (see
// StatusText and the spec's open question on this).
type Status int

const (
	StatusOK Status = 0

	StatusObjectStart     Status = 1  // non-whitespace where object start expected
	StatusAttrStart       Status = 2  // non-whitespace where attribute start expected
	StatusBadAttr         Status = 3  // unknown attribute name
	StatusAttrLong        Status = 4  // attribute name too long
	StatusNoArray         Status = 5  // '[' seen when not expecting an array
	StatusNoBracket       Status = 6  // array kind declared but no '['
	StatusStringLong      Status = 7  // string value too long
	StatusTokenLong       Status = 8  // token value too long
	StatusBadTrail        Status = 9  // garbage where ',' or '}' expected
	StatusArrayStart      Status = 10 // missing array start
	StatusObjectArray     Status = 11 // error inside an object-array element
	StatusTooManyElements Status = 12 // too many array elements
	StatusBadSubTrail     Status = 13 // garbage where array ',' expected
	StatusSubType         Status = 14 // unsupported array element kind
	StatusBadString       Status = 15 // string-parse error
	StatusCheckFail       Status = 16 // check literal mismatch
	StatusNoParallelString Status = 17 // parallel-array string not supported
	StatusBadEnum         Status = 18 // invalid enumerated value
	StatusQuotedNonString Status = 19 // quoted value where unquoted expected
	// StatusUnquotedString shares JSON_ERR_QNONSTRING's numeric value in the
	// original library; this parser preserves that conflation rather than
	// assigning it a distinct code.
	StatusUnquotedString Status = 19 // unquoted value where quoted expected
	StatusMisc           Status = 20 // generic conversion error
	StatusBadNumber       Status = 21 // bad-number
	StatusNullPointer     Status = 22 // null pointer where one should not be
	StatusNoCurly         Status = 23 // missing '{'
)

var statusText = map[Status]string{
	StatusOK:               "success",
	StatusObjectStart:      "non-whitespace when expecting object start",
	StatusAttrStart:        "non-whitespace when expecting attribute start",
	StatusBadAttr:          "unknown attribute name",
	StatusAttrLong:         "attribute name too long",
	StatusNoArray:          "saw [ when not expecting array",
	StatusNoBracket:        "array element specified, but no [",
	StatusStringLong:       "string value too long",
	StatusTokenLong:        "token value too long",
	StatusBadTrail:         "garbage while expecting comma or } or ]",
	StatusArrayStart:       "didn't find expected array start",
	StatusObjectArray:      "error while parsing object array",
	StatusTooManyElements:  "too many array elements",
	StatusBadSubTrail:      "garbage while expecting array comma",
	StatusSubType:          "unsupported array element type",
	StatusBadString:        "error while string parsing",
	StatusCheckFail:        "check attribute not matched",
	StatusNoParallelString: "can't support strings in parallel arrays",
	StatusBadEnum:          "invalid enumerated value",
	StatusQuotedNonString:  "saw quoted value when expecting nonstring (or didn't see quoted value when expecting string)",
	StatusMisc:             "other data conversion error",
	StatusBadNumber:        "error while parsing a numerical argument",
	StatusNullPointer:      "unexpected null value or attribute pointer",
	StatusNoCurly:          "object element specified, but no {",
}

// Text returns the fixed, human-readable description for a status code.
func (s Status) Text() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return "unknown error while parsing JSON"
}

// ParseError reports the first-wins fault encountered during a parse,
// together with the byte offset it was detected at and, best effort, the
// name of the attribute being processed when the fault occurred.
type ParseError struct {
	Status Status
	Offset int
	Attr   string
}

func (e *ParseError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("fixjson: %s (attribute %q, offset %d)", e.Status.Text(), e.Attr, e.Offset)
	}
	return fmt.Sprintf("fixjson: %s (offset %d)", e.Status.Text(), e.Offset)
}

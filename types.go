package fixjson

import "github.com/solvire/fixjson/internal/engine"

// Kind is the closed set of value kinds a schema entry may declare.
// Aliased from the engine package the way the teacher exposes its wire
// types through the root package (see source.go's TokenKind alias): the
// state machines live in internal/engine, but callers build schemas
// against these names without ever importing that package directly.
type Kind = engine.Kind

const (
	KindInteger      = engine.KindInteger
	KindUinteger     = engine.KindUinteger
	KindShort        = engine.KindShort
	KindUshort       = engine.KindUshort
	KindReal         = engine.KindReal
	KindString       = engine.KindString
	KindBoolean      = engine.KindBoolean
	KindCharacter    = engine.KindCharacter
	KindTime         = engine.KindTime
	KindObject       = engine.KindObject
	KindStructObject = engine.KindStructObject
	KindArray        = engine.KindArray
	KindCheck        = engine.KindCheck
	KindIgnore       = engine.KindIgnore
)

// EnumEntry maps one quoted symbolic name to the integer stored on a
// match.
type EnumEntry = engine.EnumEntry

// Default carries the value a schema entry's destination is primed with
// before a parse begins.
type Default = engine.Default

// ParseError reports the first-wins fault a parse encountered, the byte
// offset it was detected at, and, best effort, the attribute being
// processed at the time.
type ParseError = engine.ParseError

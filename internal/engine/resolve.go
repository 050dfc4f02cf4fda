package engine

import "unsafe"

// StringTarget is a resolved string destination: a byte slice the
// converter may write into (with one byte reserved for the terminator) and
// NUL-terminate.
type StringTarget struct {
	Buf []byte
}

// Target is the resolved destination for one attribute at one array index,
// as real Go pointers. Valid is false for kinds with no direct destination
// (object, structobject, array, check, ignore), or when the requested
// index has no backing storage (for example a string entry under a
// parallel object-array at index > 0).
type Target struct {
	Valid bool
	Kind  Kind

	Int    *int64
	Uint   *uint64
	Short  *int16
	Ushort *uint16
	Real   *float64
	Bool   *bool
	Char   *byte
	Str    *StringTarget
}

// Resolve is the address resolver: given a schema entry, the array schema
// enclosing it (nil if the entry is a top-level attribute), and an element
// index, it produces the concrete destination to write a converted value
// into. This generalizes the original's json_target_address, which always
// treats a scalar destination as an array base pointer (index 0 for a bare
// attribute) and separately resolves STRUCTOBJECT members via
// offsetof-style byte arithmetic; both cases converge here into real Go
// pointers instead of a tagged union plus raw offsets.
func Resolve(entry *AttrSchema, parent *ArraySchema, index int) Target {
	switch entry.Kind {
	case KindIgnore, KindObject, KindStructObject, KindArray, KindCheck:
		return Target{}
	}

	if parent != nil && parent.Mode == ArrayStructObject {
		return resolveStructObjectMember(entry, parent, index)
	}
	return resolveScalar(entry, index)
}

func resolveStructObjectMember(entry *AttrSchema, parent *ArraySchema, index int) Target {
	base := unsafe.Add(parent.Base, uintptr(index)*parent.Stride+entry.Offset)
	switch entry.Kind {
	case KindInteger:
		return Target{Valid: true, Kind: entry.Kind, Int: (*int64)(base)}
	case KindUinteger:
		return Target{Valid: true, Kind: entry.Kind, Uint: (*uint64)(base)}
	case KindShort:
		return Target{Valid: true, Kind: entry.Kind, Short: (*int16)(base)}
	case KindUshort:
		return Target{Valid: true, Kind: entry.Kind, Ushort: (*uint16)(base)}
	case KindReal, KindTime:
		return Target{Valid: true, Kind: entry.Kind, Real: (*float64)(base)}
	case KindBoolean:
		return Target{Valid: true, Kind: entry.Kind, Bool: (*bool)(base)}
	case KindCharacter:
		return Target{Valid: true, Kind: entry.Kind, Char: (*byte)(base)}
	case KindString:
		buf := unsafe.Slice((*byte)(base), entry.StrCap)
		return Target{Valid: true, Kind: entry.Kind, Str: &StringTarget{Buf: buf}}
	}
	return Target{}
}

func resolveScalar(entry *AttrSchema, index int) Target {
	switch entry.Kind {
	case KindInteger:
		if index >= len(entry.Int) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Int: &entry.Int[index]}
	case KindUinteger:
		if index >= len(entry.Uint) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Uint: &entry.Uint[index]}
	case KindShort:
		if index >= len(entry.Short) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Short: &entry.Short[index]}
	case KindUshort:
		if index >= len(entry.Ushort) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Ushort: &entry.Ushort[index]}
	case KindReal, KindTime:
		if index >= len(entry.Real) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Real: &entry.Real[index]}
	case KindBoolean:
		if index >= len(entry.Bool) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Bool: &entry.Bool[index]}
	case KindCharacter:
		if index >= len(entry.Char) {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Char: &entry.Char[index]}
	case KindString:
		if index > 0 || entry.Str == nil {
			return Target{}
		}
		return Target{Valid: true, Kind: entry.Kind, Str: &StringTarget{Buf: entry.Str.Buf}}
	}
	return Target{}
}

// stringCapacity reports the full capacity (including the terminator byte)
// of the string destination an entry would resolve to under parent/index,
// without requiring a live Target. It is used while still scanning a
// quoted value, to bound the copy before the destination is actually
// written.
func stringCapacity(entry *AttrSchema, parent *ArraySchema) int {
	if parent != nil && parent.Mode == ArrayStructObject {
		return entry.StrCap
	}
	if entry.Str != nil {
		return len(entry.Str.Buf)
	}
	return 0
}

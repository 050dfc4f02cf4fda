package fixjson

import "unsafe"

// OffsetOf reports the byte offset of the field selector reaches into a
// value of type S, for use as an AttrSchema.Offset when that entry is a
// member of a structobject array element. It replaces the original
// library's error-prone offsetof() macro usage (STRUCTOBJECT's per-field
// offsetof(type, field) argument) with a selector function the compiler
// checks against S and F, while still resolving to a plain integer at
// schema-build time via the same pointer arithmetic offsetof ultimately
// boils down to.
//
// selector must do nothing but return a pointer to one field of its
// argument (e.g. `func(s *Reading) *int32 { return &s.Count }`); calling
// OffsetOf is only ever done once per field, while building a schema, not
// on the parse path.
func OffsetOf[S, F any](selector func(*S) *F) uintptr {
	var zero S
	base := unsafe.Pointer(&zero)
	field := unsafe.Pointer(selector(&zero))
	return uintptr(field) - uintptr(base)
}

// StructSlice returns the base address of items' backing array and the
// byte stride between consecutive elements, for use as ArraySchema.Base
// and ArraySchema.Stride when configuring an ArrayStructObject destination.
// It replaces the original library's STRUCTARRAY macro, which paired a
// base pointer with an explicit sizeof(...) stride by hand.
func StructSlice[T any](items []T) (base unsafe.Pointer, stride uintptr) {
	var zero T
	stride = unsafe.Sizeof(zero)
	if len(items) == 0 {
		return nil, stride
	}
	return unsafe.Pointer(&items[0]), stride
}

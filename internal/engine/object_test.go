package engine

import "testing"

// TestParseObjectBasic reconstructs original_source/example1.c: an integer
// and two booleans, each defaulted to a value distinct from the sample
// document so a reader can see which attributes were actually present.
func TestParseObjectBasic(t *testing.T) {
	count := []int64{0}
	flag1 := []bool{false}
	flag2 := []bool{false}
	schema := &ObjectSchema{
		Attrs: []AttrSchema{
			{Name: "count", Kind: KindInteger, Int: count, Default: Default{Int: -1}},
			{Name: "flag1", Kind: KindBoolean, Bool: flag1, Default: Default{Bool: false}},
			{Name: "flag2", Kind: KindBoolean, Bool: flag2, Default: Default{Bool: true}},
		},
	}

	n, err := ParseObject([]byte(`{"count":3,"flag1":true}`), schema)
	if err != nil {
		t.Fatalf("ParseObject: unexpected error: %v", err)
	}
	if n != len(`{"count":3,"flag1":true}`) {
		t.Errorf("ParseObject consumed %d bytes, want %d", n, len(`{"count":3,"flag1":true}`))
	}
	if count[0] != 3 {
		t.Errorf("count = %d, want 3", count[0])
	}
	if !flag1[0] {
		t.Error("flag1 = false, want true")
	}
	if !flag2[0] {
		t.Error("flag2 = false, want true (default)")
	}
}

func TestParseObjectUnknownAttribute(t *testing.T) {
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "count", Kind: KindInteger, Int: []int64{0}, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"bogus":1}`), schema)
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Status != StatusBadAttr {
		t.Errorf("status = %v, want StatusBadAttr", pe.Status)
	}
	if pe.Attr != "bogus" {
		t.Errorf("attr = %q, want %q", pe.Attr, "bogus")
	}
}

func TestParseObjectQuotedNonString(t *testing.T) {
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "n", Kind: KindInteger, Int: []int64{0}, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"n":"3"}`), schema)
	pe, ok := err.(*ParseError)
	if !ok || pe.Status != StatusQuotedNonString {
		t.Fatalf("expected StatusQuotedNonString, got %v", err)
	}
}

func TestParseObjectUnquotedString(t *testing.T) {
	str := &StringDest{Buf: make([]byte, 16)}
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "s", Kind: KindString, Str: str, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"s":3}`), schema)
	pe, ok := err.(*ParseError)
	if !ok || pe.Status != StatusUnquotedString {
		t.Fatalf("expected StatusUnquotedString, got %v", err)
	}
}

func TestParseObjectStringTruncation(t *testing.T) {
	str := &StringDest{Buf: make([]byte, 4)} // 3 data bytes + terminator
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "s", Kind: KindString, Str: str, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"s":"hello"}`), schema)
	pe, ok := err.(*ParseError)
	if !ok || pe.Status != StatusStringLong {
		t.Fatalf("expected StatusStringLong, got %v", err)
	}
}

func TestParseObjectStringFits(t *testing.T) {
	str := &StringDest{Buf: make([]byte, 8)}
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "s", Kind: KindString, Str: str, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"s":"abc"}`), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(str.Buf[:3]); got != "abc" {
		t.Errorf("string dest = %q, want %q", got, "abc")
	}
	if str.Buf[3] != 0 {
		t.Errorf("string dest not NUL-terminated")
	}
}

func TestParseObjectEscapes(t *testing.T) {
	str := &StringDest{Buf: make([]byte, 16)}
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "s", Kind: KindString, Str: str, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"s":"a\nbA"}`), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nbA"
	if got := string(str.Buf[:len(want)]); got != want {
		t.Errorf("string dest = %q, want %q", got, want)
	}
}

func TestParseObjectEnum(t *testing.T) {
	val := []int64{0}
	schema := &ObjectSchema{Attrs: []AttrSchema{{
		Name: "mode", Kind: KindInteger, Int: val, NoDefault: true,
		Enum: []EnumEntry{{Name: "low", Value: 1}, {Name: "high", Value: 9}},
	}}}
	if _, err := ParseObject([]byte(`{"mode":"high"}`), schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val[0] != 9 {
		t.Errorf("mode = %d, want 9", val[0])
	}

	_, err := ParseObject([]byte(`{"mode":"unknown"}`), schema)
	pe, ok := err.(*ParseError)
	if !ok || pe.Status != StatusBadEnum {
		t.Fatalf("expected StatusBadEnum, got %v", err)
	}
}

func TestParseObjectCheck(t *testing.T) {
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "class", Kind: KindCheck, Check: "TPV", NoDefault: true}}}
	if _, err := ParseObject([]byte(`{"class":"TPV"}`), schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := ParseObject([]byte(`{"class":"SKY"}`), schema)
	pe, ok := err.(*ParseError)
	if !ok || pe.Status != StatusCheckFail {
		t.Fatalf("expected StatusCheckFail, got %v", err)
	}
}

func TestParseObjectTypeReconciliation(t *testing.T) {
	// Two entries share the name "v": the first only accepts a real
	// (digit-led, containing '.'), the second an integer. A bare integer
	// lexeme should skip past the real entry and land on the integer one.
	realDest := []float64{0}
	intDest := []int64{0}
	schema := &ObjectSchema{Attrs: []AttrSchema{
		{Name: "v", Kind: KindReal, Real: realDest, NoDefault: true},
		{Name: "v", Kind: KindInteger, Int: intDest, NoDefault: true},
	}}
	if _, err := ParseObject([]byte(`{"v":5}`), schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intDest[0] != 5 {
		t.Errorf("intDest = %d, want 5", intDest[0])
	}
	if realDest[0] != 0 {
		t.Errorf("realDest = %v, want untouched 0", realDest[0])
	}
}

func TestParseObjectTrailingGarbage(t *testing.T) {
	schema := &ObjectSchema{Attrs: []AttrSchema{{Name: "n", Kind: KindInteger, Int: []int64{0}, NoDefault: true}}}
	_, err := ParseObject([]byte(`{"n":1 garbage}`), schema)
	pe, ok := err.(*ParseError)
	if !ok || pe.Status != StatusBadTrail {
		t.Fatalf("expected StatusBadTrail, got %v", err)
	}
}

func TestParseObjectNestedArray(t *testing.T) {
	vals := []int64{0, 0, 0}
	var count int
	schema := &ObjectSchema{Attrs: []AttrSchema{{
		Name: "xs", Kind: KindArray, NoDefault: true,
		Array: &ArraySchema{Element: KindInteger, Int: vals, MaxLen: 3, Count: &count},
	}}}
	n, err := ParseObject([]byte(`{"xs":[1,2,3]}`), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(`{"xs":[1,2,3]}`) {
		t.Errorf("consumed %d bytes, want %d", n, len(`{"xs":[1,2,3]}`))
	}
	if count != 3 || vals[0] != 1 || vals[1] != 2 || vals[2] != 3 {
		t.Errorf("vals = %v, count = %d", vals, count)
	}
}

func TestParseObjectParallelStringRejected(t *testing.T) {
	str := &StringDest{Buf: make([]byte, 8)}
	elem := &ObjectSchema{Attrs: []AttrSchema{{Name: "s", Kind: KindString, Str: str, NoDefault: true}}}
	arr := &ArraySchema{Element: KindObject, Mode: ArrayScalar, Elem: elem, MaxLen: 2}
	_, status, _, _ := parseObjectAt([]byte(`{"s":"x"}`), 0, elem, arr, 1)
	if status != StatusNoParallelString {
		t.Fatalf("status = %v, want StatusNoParallelString", status)
	}
}

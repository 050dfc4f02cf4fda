package engine

import (
	"strings"

	"github.com/solvire/fixjson/internal/convert"
)

const (
	maxAttrLen  = 31  // longest attribute name accepted, terminator excluded
	maxValueLen = 512 // longest unquoted token or quoted value accepted, terminator excluded
)

type objState int

const (
	stInit objState = iota
	stAwaitAttr
	stInAttr
	stAwaitValue
	stInValString
	stInEscape
	stInValToken
	stPostArray
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseObject parses a `{ ... }` form at the start of input against schema,
// writing each recognized attribute's value to its schema-declared
// destination. On success it returns the offset just past the consumed
// document, including any trailing whitespace.
func ParseObject(input []byte, schema *ObjectSchema) (int, error) {
	end, status, attr, off := parseObjectAt(input, 0, schema, nil, 0)
	if status != StatusOK {
		return 0, &ParseError{Status: status, Offset: off, Attr: attr}
	}
	return end, nil
}

// parseObjectAt is the recursive entry point used both by ParseObject and
// by the array reader, which calls back in here once per element when an
// array's Element kind is KindObject or KindStructObject. parent/index
// identify the enclosing array and element position, or (nil, 0) for a
// top-level object.
func parseObjectAt(input []byte, start int, schema *ObjectSchema, parent *ArraySchema, index int) (end int, status Status, attrName string, faultOffset int) {
	if st := primeDefaults(schema, parent, index); st != StatusOK {
		return start, st, "", start
	}

	var attrbuf [maxAttrLen + 1]byte
	var valbuf [maxValueLen + 1]byte
	nAttr, nVal := 0, 0
	valueQuoted := false

	var curIdx int
	var cursor *AttrSchema
	valueCap := maxValueLen

	state := stInit
	pos := start
	trace(SeverityShallow, "engine: object parse begins at offset %d", pos)

	for pos < len(input) {
		c := input[pos]
		redo := false

		switch state {
		case stInit:
			switch {
			case isSpace(c):
			case c == '{':
				state = stAwaitAttr
			default:
				return pos, StatusObjectStart, "", pos
			}

		case stAwaitAttr:
			switch {
			case isSpace(c):
			case c == '"':
				state = stInAttr
				nAttr = 0
			case c == '}':
				pos = skipSpace(input, pos+1)
				trace(SeverityShallow, "engine: object parse ends at offset %d", pos)
				return pos, StatusOK, "", pos
			default:
				return pos, StatusAttrStart, "", pos
			}

		case stInAttr:
			if c == '"' {
				name := string(attrbuf[:nAttr])
				curIdx, cursor = findAttr(schema, name)
				if cursor == nil {
					return pos, StatusBadAttr, name, pos
				}
				attrName = name
				valueCap = attributeValueCap(cursor, parent)
				nVal = 0
				state = stAwaitValue
				break
			}
			if nAttr >= maxAttrLen {
				return pos, StatusAttrLong, "", pos
			}
			attrbuf[nAttr] = c
			nAttr++

		case stAwaitValue:
			switch {
			case isSpace(c) || c == ':':
			case c == '[':
				if cursor.Kind != KindArray {
					return pos, StatusNoArray, attrName, pos
				}
				arrEnd, arrStatus, arrOff := parseArrayAt(input, pos, cursor.Array)
				if arrStatus != StatusOK {
					return arrOff, arrStatus, attrName, arrOff
				}
				pos = arrEnd
				state = stPostArray
				redo = true
			case c == '"':
				if cursor.Kind == KindArray {
					return pos, StatusNoBracket, attrName, pos
				}
				valueQuoted = true
				nVal = 0
				state = stInValString
			default:
				if cursor.Kind == KindArray {
					return pos, StatusNoBracket, attrName, pos
				}
				valueQuoted = false
				nVal = 0
				valbuf[0] = c
				nVal = 1
				state = stInValToken
			}

		case stInValString:
			switch {
			case c == '"':
				st := commitValue(schema, &curIdx, &cursor, attrName, valbuf[:nVal], valueQuoted, parent, index)
				if st != StatusOK {
					return pos, st, attrName, pos
				}
				state = stPostArray
			case c == '\\':
				state = stInEscape
			default:
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = c
				nVal++
			}

		case stInEscape:
			switch c {
			case 'b':
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = '\b'
				nVal++
				state = stInValString
			case 'f':
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = '\f'
				nVal++
				state = stInValString
			case 'n':
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = '\n'
				nVal++
				state = stInValString
			case 'r':
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = '\r'
				nVal++
				state = stInValString
			case 't':
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = '\t'
				nVal++
				state = stInValString
			case 'u':
				// \uXXXX is consumed in one shot (cp += 4) rather than as
				// its own state, matching the original's compact handling
				// of the same escape.
				if pos+4 >= len(input) {
					return pos, StatusBadString, attrName, pos
				}
				val := 0
				for k := 1; k <= 4; k++ {
					d, ok := hexVal(input[pos+k])
					if !ok {
						return pos, StatusBadString, attrName, pos
					}
					val = val<<4 | d
				}
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = byte(val)
				nVal++
				pos += 4
				state = stInValString
			default:
				if nVal >= valueCap {
					return pos, StatusStringLong, attrName, pos
				}
				valbuf[nVal] = c
				nVal++
				state = stInValString
			}

		case stInValToken:
			if isSpace(c) || c == ',' || c == '}' {
				st := commitValue(schema, &curIdx, &cursor, attrName, valbuf[:nVal], valueQuoted, parent, index)
				if st != StatusOK {
					return pos, st, attrName, pos
				}
				state = stPostArray
				redo = true
				break
			}
			if nVal >= maxValueLen {
				return pos, StatusTokenLong, attrName, pos
			}
			valbuf[nVal] = c
			nVal++

		case stPostArray:
			switch {
			case isSpace(c):
			case c == ',':
				state = stAwaitAttr
			case c == '}':
				pos = skipSpace(input, pos+1)
				trace(SeverityShallow, "engine: object parse ends at offset %d", pos)
				return pos, StatusOK, "", pos
			default:
				return pos, StatusBadTrail, attrName, pos
			}
		}

		if !redo {
			pos++
		}
	}
	return pos, StatusBadTrail, attrName, pos
}

// attributeValueCap computes the maximum number of bytes a quoted string
// value may occupy for the given entry: string kind uses the destination's
// declared capacity minus one (room for the terminator); check kind uses
// the length of its literal; every other kind (time, ignore, and
// enum-mapped entries included) gets the full value buffer.
func attributeValueCap(entry *AttrSchema, parent *ArraySchema) int {
	switch {
	case entry.Kind == KindString:
		capacity := stringCapacity(entry, parent)
		if capacity == 0 {
			return 0
		}
		return capacity - 1
	case entry.Kind == KindCheck:
		return len(entry.Check)
	default:
		return maxValueLen
	}
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func primeDefaults(schema *ObjectSchema, parent *ArraySchema, index int) Status {
	for i := range schema.Attrs {
		e := &schema.Attrs[i]
		if e.NoDefault {
			continue
		}
		if e.Kind == KindString && parent != nil && parent.Mode != ArrayStructObject && index > 0 {
			return StatusNoParallelString
		}
		t := Resolve(e, parent, index)
		if !t.Valid {
			continue
		}
		switch e.Kind {
		case KindInteger:
			*t.Int = e.Default.Int
		case KindUinteger:
			*t.Uint = e.Default.Uint
		case KindShort:
			*t.Short = int16(e.Default.Int)
		case KindUshort:
			*t.Ushort = uint16(e.Default.Uint)
		case KindReal, KindTime:
			*t.Real = e.Default.Real
		case KindBoolean:
			*t.Bool = e.Default.Bool
		case KindCharacter:
			*t.Char = e.Default.Char
		case KindString:
			if len(t.Str.Buf) > 0 {
				t.Str.Buf[0] = 0
			}
		}
	}
	return StatusOK
}

// commitValue performs type reconciliation, legality checking, enum
// lookup, and conversion for a completed token or quoted value, writing
// the result to its destination. curIdx/cursor are advanced in place when
// reconciliation walks forward across same-named entries, matching the
// original's cursor-advance loop in post_val.
func commitValue(schema *ObjectSchema, curIdx *int, cursor **AttrSchema, attrName string, valBytes []byte, quoted bool, parent *ArraySchema, index int) Status {
	valStr := string(valBytes)

	// Only string/time (quoted), boolean, and digit-led integer/real
	// lexemes are syntactically tested; every other kind (character,
	// check, an enum map, ignore, object, structobject, short, ushort) has
	// no test of its own in the original and so never short-circuits this
	// loop on its own account — it only ends up selected once the chain of
	// same-named candidates runs out, same as here.
	for {
		e := *cursor
		pass := false
		switch {
		case quoted && (e.Kind == KindString || e.Kind == KindTime):
			pass = true
		case !quoted && len(valStr) > 0 && isDigit(valStr[0]):
			decimal := strings.ContainsRune(valStr, '.')
			switch {
			case decimal && e.Kind == KindReal:
				pass = true
			case !decimal && (e.Kind == KindInteger || e.Kind == KindUinteger):
				pass = true
			}
		case !quoted && e.Kind == KindBoolean && (valStr == "true" || valStr == "false"):
			pass = true
		}
		if pass {
			break
		}
		next := *curIdx + 1
		if next >= len(schema.Attrs) || schema.Attrs[next].Name != attrName {
			break
		}
		*curIdx = next
		*cursor = &schema.Attrs[next]
	}

	e := *cursor

	if quoted {
		allowed := e.Kind == KindString || e.Kind == KindCharacter || e.Kind == KindCheck ||
			e.Kind == KindTime || e.Kind == KindIgnore || e.Enum != nil
		if !allowed {
			return StatusQuotedNonString
		}
	} else {
		disallowed := e.Kind == KindString || e.Kind == KindCheck || e.Kind == KindTime || e.Enum != nil
		if disallowed {
			return StatusUnquotedString
		}
	}

	if e.Enum != nil {
		var mapped int64
		found := false
		for _, en := range e.Enum {
			if en.Name == valStr {
				mapped = en.Value
				found = true
				break
			}
		}
		if !found {
			return StatusBadEnum
		}
		valStr = itoa(mapped)
	}

	target := Resolve(e, parent, index)

	switch e.Kind {
	case KindInteger:
		if target.Valid {
			*target.Int = convert.ParseIntToken(valStr)
		}
	case KindUinteger:
		if target.Valid {
			*target.Uint = convert.ParseUintToken(valStr)
		}
	case KindShort:
		if target.Valid {
			*target.Short = int16(convert.ParseIntToken(valStr))
		}
	case KindUshort:
		if target.Valid {
			*target.Ushort = uint16(convert.ParseUintToken(valStr))
		}
	case KindReal:
		if target.Valid {
			*target.Real = convert.ParseRealToken(valStr)
		}
	case KindTime:
		v, err := convert.ParseTime(valStr)
		if err != nil {
			return StatusBadNumber
		}
		if target.Valid {
			*target.Real = v
		}
	case KindString:
		if parent != nil && parent.Mode != ArrayStructObject && index > 0 {
			return StatusNoParallelString
		}
		if target.Valid {
			n := copy(target.Str.Buf[:len(target.Str.Buf)-1], valStr)
			target.Str.Buf[n] = 0
		}
	case KindBoolean:
		if target.Valid {
			*target.Bool = valStr == "true"
		}
	case KindCharacter:
		if len(valStr) > 1 {
			return StatusStringLong
		}
		if target.Valid {
			if len(valStr) == 1 {
				*target.Char = valStr[0]
			} else {
				*target.Char = 0
			}
		}
	case KindCheck:
		if valStr != e.Check {
			return StatusCheckFail
		}
	case KindIgnore, KindObject, KindStructObject, KindArray:
		// No destination; accepted and discarded.
	}
	return StatusOK
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

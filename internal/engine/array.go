package engine

import "github.com/solvire/fixjson/internal/convert"

// ParseArray parses a `[ ... ]` form at the start of input against schema,
// writing each element into its destination bank and, if schema.Count is
// set, recording how many elements were read. On success it returns the
// offset just past the consumed document, including any trailing
// whitespace.
func ParseArray(input []byte, schema *ArraySchema) (int, error) {
	end, status, off := parseArrayAt(input, 0, schema)
	if status != StatusOK {
		return 0, &ParseError{Status: status, Offset: off}
	}
	return end, nil
}

// parseArrayAt is the recursive entry point used both by ParseArray and by
// the object reader, which calls back in here when an attribute's Kind is
// KindArray.
func parseArrayAt(input []byte, start int, schema *ArraySchema) (end int, status Status, faultOffset int) {
	if schema.Strings != nil {
		schema.Strings.next = 0
	}

	pos := start
	if pos >= len(input) || input[pos] != '[' {
		return pos, StatusArrayStart, pos
	}
	pos++
	pos = skipSpace(input, pos)

	count := 0
	if pos < len(input) && input[pos] == ']' {
		pos++
	} else {
		for {
			if count >= schema.MaxLen {
				return pos, StatusTooManyElements, pos
			}
			next, elStatus, elOff := parseElement(input, pos, schema, count)
			if elStatus != StatusOK {
				return elOff, elStatus, elOff
			}
			pos = next
			count++

			pos = skipSpace(input, pos)
			if pos >= len(input) {
				return pos, StatusBadSubTrail, pos
			}
			if input[pos] == ']' {
				pos++
				break
			}
			if input[pos] != ',' {
				return pos, StatusBadSubTrail, pos
			}
			pos++
			pos = skipSpace(input, pos)
		}
	}

	if schema.Count != nil {
		*schema.Count = count
	}
	pos = skipSpace(input, pos)
	trace(SeverityShallow, "engine: array parse ends at offset %d, %d elements", pos, count)
	return pos, StatusOK, pos
}

func skipSpace(input []byte, pos int) int {
	for pos < len(input) && isSpace(input[pos]) {
		pos++
	}
	return pos
}

// parseElement reads exactly one array element at pos according to
// schema.Element, the way json_read_array's per-kind switch does: numeric
// kinds are scanned directly off the byte stream (no intermediate
// tokenization, unlike the object reader), a string element is a raw
// quoted copy with no escape handling, and an object/structobject element
// recurses into the object reader.
func parseElement(input []byte, pos int, schema *ArraySchema, index int) (end int, status Status, faultOffset int) {
	switch schema.Element {
	case KindInteger:
		v, n, err := convert.ScanInt(input[pos:])
		if err != nil {
			return pos, StatusBadNumber, pos
		}
		if index < len(schema.Int) {
			schema.Int[index] = v
		}
		return pos + n, StatusOK, pos

	case KindUinteger:
		v, n, err := convert.ScanUint(input[pos:])
		if err != nil {
			return pos, StatusBadNumber, pos
		}
		if index < len(schema.Uint) {
			schema.Uint[index] = v
		}
		return pos + n, StatusOK, pos

	case KindShort:
		v, n, err := convert.ScanInt(input[pos:])
		if err != nil {
			return pos, StatusBadNumber, pos
		}
		if index < len(schema.Short) {
			schema.Short[index] = int16(v)
		}
		return pos + n, StatusOK, pos

	case KindUshort:
		v, n, err := convert.ScanUint(input[pos:])
		if err != nil {
			return pos, StatusBadNumber, pos
		}
		if index < len(schema.Ushort) {
			schema.Ushort[index] = uint16(v)
		}
		return pos + n, StatusOK, pos

	case KindReal:
		v, n, _ := convert.ScanReal(input[pos:])
		if n == 0 {
			return pos, StatusBadNumber, pos
		}
		if index < len(schema.Real) {
			schema.Real[index] = v
		}
		return pos + n, StatusOK, pos

	case KindBoolean:
		tok, n := scanArrayToken(input[pos:])
		if n == 0 {
			return pos, StatusBadNumber, pos
		}
		var v bool
		switch tok {
		case "true":
			v = true
		case "false":
			v = false
		default:
			return pos, StatusBadNumber, pos
		}
		if index < len(schema.Bool) {
			schema.Bool[index] = v
		}
		return pos + n, StatusOK, pos

	case KindString:
		return parseArrayString(input, pos, schema, index)

	case KindObject, KindStructObject:
		if schema.Elem == nil {
			return pos, StatusSubType, pos
		}
		if pos >= len(input) || input[pos] != '{' {
			return pos, StatusNoCurly, pos
		}
		objEnd, objStatus, _, objOff := parseObjectAt(input, pos, schema.Elem, schema, index)
		if objStatus != StatusOK {
			return objOff, objStatus, objOff
		}
		return objEnd, StatusOK, pos

	default:
		// KindTime, KindCharacter, KindArray, KindCheck, KindIgnore: not
		// supported as array element kinds.
		return pos, StatusSubType, pos
	}
}

func scanArrayToken(buf []byte) (tok string, n int) {
	p := 0
	for p < len(buf) && !isSpace(buf[p]) && buf[p] != ',' && buf[p] != ']' {
		p++
	}
	return string(buf[:p]), p
}

// parseArrayString reads one quoted string element as a raw copy: it stops
// at the next '"' with no backslash handling at all (so `\"` also ends the
// element), mirroring
// the original array-string reader, which (unlike the object reader's
// in_val_string state) never processes escapes.
func parseArrayString(input []byte, pos int, schema *ArraySchema, index int) (end int, status Status, faultOffset int) {
	if pos >= len(input) || input[pos] != '"' {
		return pos, StatusBadString, pos
	}
	pos++
	dest := schema.Strings
	if dest == nil || index >= len(dest.Ptrs) {
		return pos, StatusTooManyElements, pos
	}
	storeStart := dest.next
	p := pos
	for p < len(input) && input[p] != '"' {
		if dest.next >= len(dest.Store) {
			return p, StatusBadString, p
		}
		dest.Store[dest.next] = input[p]
		dest.next++
		p++
	}
	if p >= len(input) {
		return p, StatusBadString, p
	}
	dest.Ptrs[index] = dest.Store[storeStart:dest.next]
	p++
	return p, StatusOK, pos
}

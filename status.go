package fixjson

import "github.com/solvire/fixjson/internal/engine"

// Status is the closed set of diagnostic codes a parse can return. Values
// match the JSON_ERR_* constants of the C library this package generalizes,
// so templates ported from that library keep the same numeric codes,
// including its conflation of "quoted where unquoted expected" and
// "unquoted where quoted expected" under one value (see StatusQuotedNonString).
type Status = engine.Status

const (
	StatusOK Status = engine.StatusOK

	StatusObjectStart      = engine.StatusObjectStart
	StatusAttrStart        = engine.StatusAttrStart
	StatusBadAttr          = engine.StatusBadAttr
	StatusAttrLong         = engine.StatusAttrLong
	StatusNoArray          = engine.StatusNoArray
	StatusNoBracket        = engine.StatusNoBracket
	StatusStringLong       = engine.StatusStringLong
	StatusTokenLong        = engine.StatusTokenLong
	StatusBadTrail         = engine.StatusBadTrail
	StatusArrayStart       = engine.StatusArrayStart
	StatusObjectArray      = engine.StatusObjectArray
	StatusTooManyElements  = engine.StatusTooManyElements
	StatusBadSubTrail      = engine.StatusBadSubTrail
	StatusSubType          = engine.StatusSubType
	StatusBadString        = engine.StatusBadString
	StatusCheckFail        = engine.StatusCheckFail
	StatusNoParallelString = engine.StatusNoParallelString
	StatusBadEnum          = engine.StatusBadEnum
	StatusQuotedNonString  = engine.StatusQuotedNonString
	StatusUnquotedString   = engine.StatusUnquotedString
	StatusMisc             = engine.StatusMisc
	StatusBadNumber        = engine.StatusBadNumber
	StatusNullPointer      = engine.StatusNullPointer
	StatusNoCurly          = engine.StatusNoCurly
)

// StatusText returns the fixed, human-readable description for a status
// code, mirroring the original library's json_error_string.
func StatusText(s Status) string { return s.Text() }

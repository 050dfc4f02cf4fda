package convert

import (
	"math"
	"testing"
)

func TestScanRealBasic(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		n    int
	}{
		{"3.14", 3.14, 4},
		{"-2.5", -2.5, 4},
		{"  42", 42, 2},
		{"1e3", 1000, 3},
		{"1.5e-2", 0.015, 6},
		{"0", 0, 1},
		{"3.14,rest", 3.14, 4},
		{"3.14]", 3.14, 4},
	}
	for _, c := range cases {
		got, n, rangeErr := ScanReal([]byte(c.in))
		if n != c.n {
			t.Errorf("ScanReal(%q) n = %d, want %d", c.in, n, c.n)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ScanReal(%q) = %v, want %v", c.in, got, c.want)
		}
		if rangeErr {
			t.Errorf("ScanReal(%q) unexpected rangeErr", c.in)
		}
	}
}

func TestScanRealEmptyLexeme(t *testing.T) {
	_, n, _ := ScanReal([]byte("abc"))
	if n != 0 {
		t.Fatalf("ScanReal(garbage) n = %d, want 0", n)
	}
}

func TestScanRealExponentClamp(t *testing.T) {
	_, n, rangeErr := ScanReal([]byte("1e999"))
	if n == 0 {
		t.Fatalf("ScanReal(1e999) should still scan a lexeme")
	}
	if !rangeErr {
		t.Errorf("ScanReal(1e999) expected a range fault")
	}
}

func TestParseRealTokenNeverFails(t *testing.T) {
	if v := ParseRealToken(""); v != 0 {
		t.Errorf("ParseRealToken(\"\") = %v, want 0", v)
	}
	if v := ParseRealToken("garbage"); v != 0 {
		t.Errorf("ParseRealToken(garbage) = %v, want 0", v)
	}
	if v := ParseRealToken("12.5"); v != 12.5 {
		t.Errorf("ParseRealToken(12.5) = %v, want 12.5", v)
	}
}

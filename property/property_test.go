package property

import (
	"fmt"
	"testing"
)

func TestCombiningClass(t *testing.T) {
	tests := []struct {
		cp  rune
		ccc uint8
	}{
		{0x0041, 0},
		{0x0300, 230},
		{0x0308, 230},
		{0x0316, 220},
		{0x031B, 216},
		{0x0327, 202},
		{0x0334, 1},
		{0x0345, 240},
		{0x034E, 220},
		{0x034F, 0}, // combining grapheme joiner is a starter
		{0x0747, 230},
		{0x0E38, 103},
		{0x1939, 222},
		{0x3099, 8},
		{0xAC00, 0},
		{0x10FFFF, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.cp), func(t *testing.T) {
			if got := CombiningClass(tt.cp); got != tt.ccc {
				t.Fatalf("want: %v, got: %v", tt.ccc, got)
			}
		})
	}
}

func TestQuickCheck(t *testing.T) {
	tests := []struct {
		cp   rune
		form Form
		want QuickCheckResult
	}{
		{0x0041, NFC, QuickCheckYes},
		{0x0041, NFD, QuickCheckYes},
		{0x00C0, NFD, QuickCheckNo},
		{0x00C0, NFC, QuickCheckYes},
		{0x00C0, NFKD, QuickCheckNo},
		{0x0300, NFC, QuickCheckMaybe},
		{0x0300, NFD, QuickCheckYes},
		{0x0340, NFC, QuickCheckNo},
		{0x0344, NFC, QuickCheckNo},
		{0x00BC, NFC, QuickCheckYes},
		{0x00BC, NFKC, QuickCheckNo},
		{0x00BC, NFKD, QuickCheckNo},
		{0x1161, NFC, QuickCheckMaybe},
		{0x11A8, NFKC, QuickCheckMaybe},
		{0xAC00, NFD, QuickCheckNo},
		{0xAC00, NFC, QuickCheckYes},
		{0x2F89D, NFC, QuickCheckNo},
		{0x2F89D, NFD, QuickCheckNo},
		// out of every table block
		{0x30000, NFC, QuickCheckYes},
		{0x30000, NFKD, QuickCheckYes},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X/%v", tt.cp, tt.form), func(t *testing.T) {
			if got := QuickCheck(tt.cp, tt.form); got != tt.want {
				t.Fatalf("want: %v, got: %v", tt.want, got)
			}
		})
	}
}

func TestDecompose(t *testing.T) {
	seq := func(cps ...rune) []rune {
		return cps
	}

	tests := []struct {
		cp     rune
		compat bool
		want   []rune
	}{
		{0x00C0, false, seq(0x41, 0x300)},
		{0x00C7, false, seq(0x43, 0x327)},
		{0x00F6, false, seq(0x6F, 0x308)},
		{0x0130, false, seq(0x49, 0x307)},
		{0x0340, false, seq(0x300)},
		{0x0344, false, seq(0x308, 0x301)},
		{0x2FA1D, false, seq(0x2A600)},
		{0x0041, false, nil},
		{0x00BC, false, nil},
		{0x00BC, true, seq(0x31, 0x2044, 0x34)},
		{0x00C0, true, seq(0x41, 0x300)},
		{0x01C4, true, seq(0x44, 0x5A, 0x30C)},
		{0x017F, true, seq(0x73)},
		{0xAC00, false, nil}, // Hangul is algorithmic, never in the table
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.cp), func(t *testing.T) {
			got := Decompose(tt.cp, tt.compat)
			if len(got) != len(tt.want) {
				t.Fatalf("want: %U, got: %U", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("want: %U, got: %U", tt.want, got)
				}
			}
		})
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		starter  rune
		combiner rune
		want     rune
		ok       bool
	}{
		{0x41, 0x300, 0x00C0, true},
		{0x43, 0x327, 0x00C7, true},
		{0x6F, 0x308, 0x00F6, true},
		{0x49, 0x307, 0x0130, true},
		{0x5A, 0x30C, 0x017D, true},
		{0x41, 0x327, 0, false},
		{0x2A600, 0, 0, false}, // singleton decompositions never recompose
		{0x1100, 0x1161, 0, false}, // Hangul is algorithmic, never in the table
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X+U+%04X", tt.starter, tt.combiner), func(t *testing.T) {
			got, ok := Compose(tt.starter, tt.combiner)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("want: (U+%04X, %v), got: (U+%04X, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestCaseMapping(t *testing.T) {
	seq := func(cps ...rune) []rune {
		return cps
	}

	tests := []struct {
		cp   rune
		kind CaseKind
		want []rune
	}{
		{'a', CaseUpper, seq('A')},
		{'A', CaseLower, seq('a')},
		{'a', CaseTitle, seq('A')},
		{'A', CaseFold, seq('a')},
		{'A', CaseUpper, nil},
		{0x00E0, CaseUpper, seq(0x00C0)},
		{0x00DF, CaseUpper, seq(0x53, 0x53)},
		{0x00DF, CaseFold, seq(0x73, 0x73)},
		{0x0130, CaseLower, seq(0x69, 0x307)},
		{0x0131, CaseUpper, seq(0x49)},
		{0x00FF, CaseUpper, seq(0x0178)},
		{0x01C6, CaseTitle, seq(0x01C5)},
		{0x01C6, CaseUpper, seq(0x01C4)},
		{0x01C4, CaseLower, seq(0x01C6)},
		{0x03C2, CaseFold, seq(0x03C3)},
		{0x03A3, CaseLower, seq(0x03C3)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X/%v", tt.cp, tt.kind), func(t *testing.T) {
			got := CaseMapping(tt.cp, tt.kind)
			if len(got) != len(tt.want) {
				t.Fatalf("want: %U, got: %U", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("want: %U, got: %U", tt.want, got)
				}
			}
		})
	}
}

func TestGeneralCategory(t *testing.T) {
	tests := []struct {
		cp   rune
		want Category
	}{
		{'A', CategoryLetter},
		{'7', CategoryNumber},
		{0x0300, CategoryMark},
		{' ', CategoryOther},
		{0x2044, CategoryOther},
		{0xAC00, CategoryLetter},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.cp), func(t *testing.T) {
			if got := GeneralCategory(tt.cp); got != tt.want {
				t.Fatalf("want: %v, got: %v", tt.want, got)
			}
		})
	}
}

func TestCaseProperties(t *testing.T) {
	if !IsCased('a') || !IsCased(0x00C0) || IsCased('7') || IsCased(0x0300) {
		t.Fatalf("unexpected IsCased results")
	}
	if !IsCaseIgnorable(0x0300) || !IsCaseIgnorable('\'') || IsCaseIgnorable('a') {
		t.Fatalf("unexpected IsCaseIgnorable results")
	}
	if !IsSoftDotted('i') || !IsSoftDotted('j') || !IsSoftDotted(0x012F) || IsSoftDotted('I') {
		t.Fatalf("unexpected IsSoftDotted results")
	}
}

package ucd

import (
	"errors"
	"strings"
	"testing"
)

func TestParseUnicodeData(t *testing.T) {
	src := `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
00C0;LATIN CAPITAL LETTER A WITH GRAVE;Lu;0;L;0041 0300;;;;N;LATIN CAPITAL LETTER A GRAVE;;;00E0;
00BC;VULGAR FRACTION ONE QUARTER;No;0;ON;<fraction> 0031 2044 0034;;;1/4;N;FRACTION ONE QUARTER;;;;
0300;COMBINING GRAVE ACCENT;Mn;230;NSM;;;;;N;NON-SPACING GRAVE;;;;
AC00;<Hangul Syllable, First>;Lo;0;L;;;;;N;;;;;
D7A3;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;
`
	data, err := ParseUnicodeData(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := data.Records[0x41]
	if a == nil || a.GeneralCategory != "Lu" || a.SimpleLowercase != 0x61 || a.SimpleUppercase != 0 {
		t.Fatalf("unexpected record for U+0041: %+v", a)
	}

	grave := data.Records[0xC0]
	if len(grave.Decomposition) != 2 || grave.Decomposition[0] != 0x41 || grave.Decomposition[1] != 0x300 {
		t.Fatalf("unexpected decomposition for U+00C0: %U", grave.Decomposition)
	}
	if grave.DecompositionCompat {
		t.Fatalf("canonical mapping flagged as compatibility")
	}

	quarter := data.Records[0xBC]
	if !quarter.DecompositionCompat {
		t.Fatalf("compatibility mapping not flagged")
	}
	if len(quarter.Decomposition) != 3 || quarter.Decomposition[1] != 0x2044 {
		t.Fatalf("unexpected decomposition for U+00BC: %U", quarter.Decomposition)
	}

	mark := data.Records[0x300]
	if mark.CanonicalCombiningClass != 230 {
		t.Fatalf("unexpected combining class: %v", mark.CanonicalCombiningClass)
	}

	if len(data.Ranges) != 1 {
		t.Fatalf("unexpected range count: %v", len(data.Ranges))
	}
	hangul := data.Ranges[0]
	if hangul.Range.From != 0xAC00 || hangul.Range.To != 0xD7A3 || hangul.Name != "Hangul Syllable" {
		t.Fatalf("unexpected range record: %+v", hangul)
	}
}

func TestParseUnicodeData_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"too few fields", "0041;LATIN CAPITAL LETTER A;Lu;0;L\n"},
		{"bad code point", "XYZ;NAME;Lu;0;L;;;;;N;;;;;\n"},
		{"bad combining class", "0041;NAME;Lu;abc;L;;;;;N;;;;;\n"},
		{"last without first", "D7A3;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUnicodeData(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("expected an error")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected a ParseError, got: %v", err)
			}
			if parseErr.Line != 1 {
				t.Fatalf("unexpected line: %v", parseErr.Line)
			}
		})
	}
}

func TestParseCaseFolding(t *testing.T) {
	src := `# CaseFolding-13.0.0.txt
0041; C; 0061; # LATIN CAPITAL LETTER A
0049; T; 0131; # LATIN CAPITAL LETTER I
0049; C; 0069; # LATIN CAPITAL LETTER I
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
1E9E; S; 00DF; # LATIN CAPITAL LETTER SHARP S
`
	folding, err := ParseCaseFolding(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := folding.Full[0x41]; len(got) != 1 || got[0] != 0x61 {
		t.Fatalf("unexpected fold for U+0041: %U", got)
	}
	if got := folding.Full[0xDF]; len(got) != 2 || got[0] != 0x73 || got[1] != 0x73 {
		t.Fatalf("unexpected fold for U+00DF: %U", got)
	}
	if got := folding.Turkic[0x49]; len(got) != 1 || got[0] != 0x131 {
		t.Fatalf("unexpected Turkic fold for U+0049: %U", got)
	}
	// Simple foldings are skipped by the full fold.
	if _, ok := folding.Full[0x1E9E]; ok {
		t.Fatalf("simple folding must not be merged into the full set")
	}
}

func TestParseSpecialCasing(t *testing.T) {
	src := `00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S
03A3; 03C2; 03A3; 03A3; Final_Sigma; # GREEK CAPITAL LETTER SIGMA
0049; 0131; 0049; 0049; tr; # LATIN CAPITAL LETTER I
0049; 0069 0307; 0049; 0049; lt More_Above; # LATIN CAPITAL LETTER I
`
	casing, err := ParseSpecialCasing(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(casing.Entries) != 4 {
		t.Fatalf("unexpected entry count: %v", len(casing.Entries))
	}

	sharpS := casing.Entries[0]
	if !sharpS.Unconditional() {
		t.Fatalf("sharp s entry must be unconditional")
	}
	if len(sharpS.Upper) != 2 || sharpS.Upper[0] != 0x53 {
		t.Fatalf("unexpected upper mapping: %U", sharpS.Upper)
	}

	sigma := casing.Entries[1]
	if sigma.Locale != "" || len(sigma.Conditions) != 1 || sigma.Conditions[0] != "Final_Sigma" {
		t.Fatalf("unexpected sigma entry: %+v", sigma)
	}

	turkish := casing.Entries[2]
	if turkish.Locale != "tr" || len(turkish.Conditions) != 0 {
		t.Fatalf("unexpected Turkish entry: %+v", turkish)
	}

	lithuanian := casing.Entries[3]
	if lithuanian.Locale != "lt" || len(lithuanian.Conditions) != 1 || lithuanian.Conditions[0] != "More_Above" {
		t.Fatalf("unexpected Lithuanian entry: %+v", lithuanian)
	}
}

func TestParseCompositionExclusions(t *testing.T) {
	src := `# CompositionExclusions-13.0.0.txt
0958    #  DEVANAGARI LETTER QA
FB1F    #  HEBREW LIGATURE YIDDISH YOD YOD PATAH
`
	excl, err := ParseCompositionExclusions(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !excl.CodePoints[0x958] || !excl.CodePoints[0xFB1F] {
		t.Fatalf("expected exclusions missing: %v", excl.CodePoints)
	}
	if excl.CodePoints[0x41] {
		t.Fatalf("unexpected exclusion for U+0041")
	}
}

func TestParseDerivedNormalizationProps(t *testing.T) {
	src := `0340..0341        ; Full_Composition_Exclusion # Mn   [2] COMBINING GRAVE TONE MARK..COMBINING ACUTE TONE MARK
00C0..00C5        ; NFD_QC; N # L&   [6] LATIN CAPITAL LETTER A WITH GRAVE..LATIN CAPITAL LETTER A WITH RING ABOVE
0300..0304        ; NFC_QC; M # Mn   [5] COMBINING GRAVE ACCENT..COMBINING MACRON
00A0              ; NFKD_QC; N # Zs       NO-BREAK SPACE
0374              ; NFC_QC; N # Lm       GREEK NUMERAL SIGN
`
	props, err := ParseDerivedNormalizationProps(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !props.FullCompositionExclusion[0x340] || !props.FullCompositionExclusion[0x341] {
		t.Fatalf("expected full composition exclusions missing")
	}
	if got := props.QuickCheck["NFD_QC"][0xC3]; got != QuickCheckValueNo {
		t.Fatalf("unexpected NFD_QC for U+00C3: %v", got)
	}
	if got := props.QuickCheck["NFC_QC"][0x302]; got != QuickCheckValueMaybe {
		t.Fatalf("unexpected NFC_QC for U+0302: %v", got)
	}
	if got := props.QuickCheck["NFC_QC"][0x374]; got != QuickCheckValueNo {
		t.Fatalf("unexpected NFC_QC for U+0374: %v", got)
	}
	// Absent code points default to Yes.
	if _, ok := props.QuickCheck["NFC_QC"][0x41]; ok {
		t.Fatalf("unexpected NFC_QC entry for U+0041")
	}
}

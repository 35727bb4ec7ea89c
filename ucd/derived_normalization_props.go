package ucd

import (
	"fmt"
	"io"
)

// QuickCheckValue is a per-form quick-check property value. Code points
// absent from every range default to Yes.
type QuickCheckValue uint8

const (
	QuickCheckValueYes QuickCheckValue = iota
	QuickCheckValueMaybe
	QuickCheckValueNo
)

// DerivedNormalizationProps carries the NFC/NFD/NFKC/NFKD quick-check
// ranges from DerivedNormalizationProps.txt, plus the
// Full_Composition_Exclusion set.
type DerivedNormalizationProps struct {
	QuickCheck map[string]map[rune]QuickCheckValue

	FullCompositionExclusion map[rune]bool
}

// ParseDerivedNormalizationProps parses DerivedNormalizationProps.txt.
//
// https://www.unicode.org/reports/tr44/#DerivedNormalizationProps.txt
func ParseDerivedNormalizationProps(r io.Reader) (*DerivedNormalizationProps, error) {
	props := &DerivedNormalizationProps{
		QuickCheck: map[string]map[rune]QuickCheckValue{
			"NFC_QC":  {},
			"NFD_QC":  {},
			"NFKC_QC": {},
			"NFKD_QC": {},
		},
		FullCompositionExclusion: map[rune]bool{},
	}

	p := newParser(r)
	for p.parse() {
		if len(p.fields) < 2 {
			return nil, p.fail(fmt.Errorf("expected at least 2 fields, got %v", len(p.fields)))
		}
		cpr, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, p.fail(err)
		}

		prop := p.fields[1].symbol()
		switch prop {
		case "Full_Composition_Exclusion":
			for cp := cpr.From; cp <= cpr.To; cp++ {
				props.FullCompositionExclusion[cp] = true
			}
		case "NFC_QC", "NFD_QC", "NFKC_QC", "NFKD_QC":
			if len(p.fields) < 3 {
				return nil, p.fail(fmt.Errorf("%v record is missing its value field", prop))
			}
			var val QuickCheckValue
			switch v := p.fields[2].symbol(); v {
			case "N":
				val = QuickCheckValueNo
			case "M":
				val = QuickCheckValueMaybe
			case "Y":
				val = QuickCheckValueYes
			default:
				return nil, p.fail(fmt.Errorf("unsupported quick check value: %v", v))
			}
			for cp := cpr.From; cp <= cpr.To; cp++ {
				props.QuickCheck[prop][cp] = val
			}
		default:
			// The file carries many more derived properties; only the
			// normalization set matters here.
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return props, nil
}

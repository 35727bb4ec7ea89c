package ucd

import (
	"fmt"
	"io"
	"strings"
)

// SpecialCasingEntry is one row of SpecialCasing.txt: a full (one-to-many)
// case mapping, optionally restricted to a locale or a context condition
// such as Final_Sigma or More_Above.
type SpecialCasingEntry struct {
	CodePoint rune
	Lower     []rune
	Title     []rune
	Upper     []rune

	// Locale is the language tag the entry is restricted to ("tr", "az",
	// "lt"), or empty for the default behavior.
	Locale string

	// Conditions holds the remaining context conditions, in order.
	Conditions []string
}

// Unconditional reports whether the entry applies everywhere.
func (e *SpecialCasingEntry) Unconditional() bool {
	return e.Locale == "" && len(e.Conditions) == 0
}

// SpecialCasing is the parsed form of SpecialCasing.txt.
type SpecialCasing struct {
	Entries []*SpecialCasingEntry
}

var knownLocales = map[string]bool{
	"tr": true,
	"az": true,
	"lt": true,
}

// ParseSpecialCasing parses SpecialCasing.txt.
//
// https://www.unicode.org/reports/tr44/#SpecialCasing.txt
func ParseSpecialCasing(r io.Reader) (*SpecialCasing, error) {
	casing := &SpecialCasing{}

	p := newParser(r)
	for p.parse() {
		if len(p.fields) < 4 {
			return nil, p.fail(fmt.Errorf("expected at least 4 fields, got %v", len(p.fields)))
		}
		cp, err := p.fields[0].codePoint()
		if err != nil {
			return nil, p.fail(err)
		}
		entry := &SpecialCasingEntry{
			CodePoint: cp,
		}
		if entry.Lower, err = p.fields[1].codePoints(); err != nil {
			return nil, p.fail(err)
		}
		if entry.Title, err = p.fields[2].codePoints(); err != nil {
			return nil, p.fail(err)
		}
		if entry.Upper, err = p.fields[3].codePoints(); err != nil {
			return nil, p.fail(err)
		}
		if len(p.fields) > 4 {
			for _, cond := range strings.Fields(p.fields[4].symbol()) {
				if knownLocales[cond] {
					entry.Locale = cond
				} else {
					entry.Conditions = append(entry.Conditions, cond)
				}
			}
		}
		casing.Entries = append(casing.Entries, entry)
	}
	if p.err != nil {
		return nil, p.err
	}
	return casing, nil
}

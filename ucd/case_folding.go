package ucd

import (
	"fmt"
	"io"
)

// CaseFolding is the parsed form of CaseFolding.txt. Common and Full
// foldings merge into one mapping, the way a full case fold applies them;
// Turkic foldings are kept apart for the tr/az tailorings.
type CaseFolding struct {
	Full   map[rune][]rune
	Turkic map[rune][]rune
}

// ParseCaseFolding parses CaseFolding.txt.
//
// https://www.unicode.org/reports/tr44/#CaseFolding.txt
func ParseCaseFolding(r io.Reader) (*CaseFolding, error) {
	folding := &CaseFolding{
		Full:   map[rune][]rune{},
		Turkic: map[rune][]rune{},
	}

	p := newParser(r)
	for p.parse() {
		if len(p.fields) < 3 {
			return nil, p.fail(fmt.Errorf("expected 3 fields, got %v", len(p.fields)))
		}
		cp, err := p.fields[0].codePoint()
		if err != nil {
			return nil, p.fail(err)
		}
		mapping, err := p.fields[2].codePoints()
		if err != nil {
			return nil, p.fail(err)
		}
		switch status := p.fields[1].symbol(); status {
		case "C", "F":
			folding.Full[cp] = mapping
		case "T":
			folding.Turkic[cp] = mapping
		case "S":
			// Simple foldings duplicate the Common set for callers that
			// cannot expand; the full fold ignores them.
		default:
			return nil, p.fail(fmt.Errorf("unsupported folding status: %v", status))
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return folding, nil
}

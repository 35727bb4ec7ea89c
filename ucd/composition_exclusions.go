package ucd

import (
	"fmt"
	"io"
)

// CompositionExclusions is the set of code points listed in
// CompositionExclusions.txt. Singleton and non-starter decompositions are
// not in the file; the generator derives those exclusions itself.
type CompositionExclusions struct {
	CodePoints map[rune]bool
}

// ParseCompositionExclusions parses CompositionExclusions.txt.
func ParseCompositionExclusions(r io.Reader) (*CompositionExclusions, error) {
	excl := &CompositionExclusions{
		CodePoints: map[rune]bool{},
	}

	p := newParser(r)
	for p.parse() {
		if len(p.fields) != 1 {
			return nil, p.fail(fmt.Errorf("expected 1 field, got %v", len(p.fields)))
		}
		cpr, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, p.fail(err)
		}
		for cp := cpr.From; cp <= cpr.To; cp++ {
			excl.CodePoints[cp] = true
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return excl, nil
}

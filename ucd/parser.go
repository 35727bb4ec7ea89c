// Package ucd parses the Unicode Character Database data files consumed
// by the offline table generator: UnicodeData.txt, CaseFolding.txt,
// SpecialCasing.txt, CompositionExclusions.txt and
// DerivedNormalizationProps.txt.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type CodePointRange struct {
	From rune
	To   rune
}

func (r CodePointRange) String() string {
	if r.From == r.To {
		return fmt.Sprintf("<U+%X>", r.From)
	}
	return fmt.Sprintf("<U+%X..U+%X>", r.From, r.To)
}

// ParseError annotates a parse failure with the line it occurred on.
type ParseError struct {
	Line  int
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %v: %v", e.Line, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

type field string

func (f field) codePoint() (rune, error) {
	n, err := strconv.ParseUint(string(f), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed code point %q: %w", string(f), err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("code point must be >=U+0000 and <=U+10FFFF: U+%X", n)
	}
	return rune(n), nil
}

func (f field) codePointRange() (CodePointRange, error) {
	s := string(f)
	if from, to, ok := strings.Cut(s, ".."); ok {
		fromCP, err := field(from).codePoint()
		if err != nil {
			return CodePointRange{}, err
		}
		toCP, err := field(to).codePoint()
		if err != nil {
			return CodePointRange{}, err
		}
		if fromCP > toCP {
			return CodePointRange{}, fmt.Errorf("code point range must be from <= to: U+%X..U+%X", fromCP, toCP)
		}
		return CodePointRange{From: fromCP, To: toCP}, nil
	}
	cp, err := f.codePoint()
	if err != nil {
		return CodePointRange{}, err
	}
	return CodePointRange{From: cp, To: cp}, nil
}

// codePoints parses a space-separated sequence of hexadecimal code points,
// as used by decomposition and case-mapping fields. An empty field yields
// nil.
func (f field) codePoints() ([]rune, error) {
	if f == "" {
		return nil, nil
	}
	var cps []rune
	for _, s := range strings.Fields(string(f)) {
		cp, err := field(s).codePoint()
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, nil
}

func (f field) symbol() string {
	return string(f)
}

// parser splits each line of a UCD data file into a slice of fields,
// stripping comments and blank lines.
//
// https://www.unicode.org/reports/tr44/#Format_Conventions
type parser struct {
	scanner *bufio.Scanner
	line    int
	fields  []field
	err     error

	fieldBuf []field
}

func newParser(r io.Reader) *parser {
	return &parser{
		scanner:  bufio.NewScanner(r),
		fieldBuf: make([]field, 0, 24),
	}
}

func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.line++
		src := p.scanner.Text()
		if i := strings.IndexByte(src, '#'); i >= 0 {
			src = src[:i]
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		p.fields = p.fieldBuf[:0]
		for _, f := range strings.Split(src, ";") {
			p.fields = append(p.fields, field(strings.TrimSpace(f)))
		}
		return true
	}
	p.err = p.scanner.Err()
	return false
}

func (p *parser) fail(err error) error {
	return &ParseError{
		Line:  p.line,
		Cause: err,
	}
}

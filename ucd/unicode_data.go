package ucd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record holds the fields of one UnicodeData.txt entry used by the table
// generator.
type Record struct {
	CodePoint       rune
	Name            string
	GeneralCategory string

	CanonicalCombiningClass uint8

	// Decomposition is the single-level decomposition mapping;
	// DecompositionCompat marks mappings carrying a formatting tag such
	// as <compat> or <noBreak>.
	Decomposition       []rune
	DecompositionCompat bool

	// Simple case mappings; 0 means the code point maps to itself.
	SimpleUppercase rune
	SimpleLowercase rune
	SimpleTitlecase rune
}

// UnicodeData is the parsed form of UnicodeData.txt. Range records
// (First>/Last> pairs, e.g. the Hangul syllable block) are kept separate
// from per-code-point records; they carry a category but no mappings.
type UnicodeData struct {
	Records map[rune]*Record
	Ranges  []RangeRecord
}

type RangeRecord struct {
	Range           CodePointRange
	Name            string
	GeneralCategory string
}

// ParseUnicodeData parses UnicodeData.txt.
//
// https://www.unicode.org/reports/tr44/#UnicodeData.txt
func ParseUnicodeData(r io.Reader) (*UnicodeData, error) {
	data := &UnicodeData{
		Records: map[rune]*Record{},
	}

	var pendingFirst *RangeRecord
	p := newParser(r)
	for p.parse() {
		if len(p.fields) < 15 {
			return nil, p.fail(fmt.Errorf("expected 15 fields, got %v", len(p.fields)))
		}
		cp, err := p.fields[0].codePoint()
		if err != nil {
			return nil, p.fail(err)
		}
		name := p.fields[1].symbol()
		gc := p.fields[2].symbol()

		if strings.HasSuffix(name, ", First>") {
			pendingFirst = &RangeRecord{
				Range:           CodePointRange{From: cp, To: cp},
				Name:            strings.TrimSuffix(strings.TrimPrefix(name, "<"), ", First>"),
				GeneralCategory: gc,
			}
			continue
		}
		if strings.HasSuffix(name, ", Last>") {
			if pendingFirst == nil {
				return nil, p.fail(fmt.Errorf("Last> record without a First> record: %v", name))
			}
			pendingFirst.Range.To = cp
			data.Ranges = append(data.Ranges, *pendingFirst)
			pendingFirst = nil
			continue
		}

		ccc, err := strconv.ParseUint(p.fields[3].symbol(), 10, 8)
		if err != nil {
			return nil, p.fail(fmt.Errorf("malformed combining class: %w", err))
		}
		decomp, isCompat, err := parseDecomposition(p.fields[5])
		if err != nil {
			return nil, p.fail(err)
		}

		rec := &Record{
			CodePoint:               cp,
			Name:                    name,
			GeneralCategory:         gc,
			CanonicalCombiningClass: uint8(ccc),
			Decomposition:           decomp,
			DecompositionCompat:     isCompat,
		}
		if rec.SimpleUppercase, err = optionalCodePoint(p.fields[12]); err != nil {
			return nil, p.fail(err)
		}
		if rec.SimpleLowercase, err = optionalCodePoint(p.fields[13]); err != nil {
			return nil, p.fail(err)
		}
		if rec.SimpleTitlecase, err = optionalCodePoint(p.fields[14]); err != nil {
			return nil, p.fail(err)
		}
		data.Records[cp] = rec
	}
	if p.err != nil {
		return nil, p.err
	}
	if pendingFirst != nil {
		return nil, fmt.Errorf("unterminated First> record: %v", pendingFirst.Name)
	}
	return data, nil
}

// parseDecomposition handles field 5 of UnicodeData.txt: an optional
// formatting tag in angle brackets followed by the mapping.
func parseDecomposition(f field) ([]rune, bool, error) {
	s := f.symbol()
	if s == "" {
		return nil, false, nil
	}
	isCompat := false
	if strings.HasPrefix(s, "<") {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, false, fmt.Errorf("malformed decomposition tag: %q", s)
		}
		isCompat = true
		s = strings.TrimSpace(s[end+1:])
	}
	cps, err := field(s).codePoints()
	if err != nil {
		return nil, false, err
	}
	return cps, isCompat, nil
}

func optionalCodePoint(f field) (rune, error) {
	if f == "" {
		return 0, nil
	}
	return f.codePoint()
}

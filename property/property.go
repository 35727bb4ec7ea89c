//go:generate go run ../cmd/ucdgen/main.go
//go:generate go fmt tables.go

// Package property exposes the per-code-point Unicode properties needed for
// normalization and case mapping: canonical combining class, quick-check
// values, decomposition and composition mappings, case mappings, and a
// coarse general category.
//
// The data lives in tables.go, generated offline from the Unicode Character
// Database by cmd/ucdgen. Every per-code-point table is a two-stage
// pagetable lookup; the composition table is a sorted pair array.
package property

import (
	"sort"

	"github.com/tkelman/utf8rewind/pagetable"
)

// Form identifies a Unicode normalization form.
type Form uint8

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	}
	return "unknown"
}

// Compat reports whether f applies compatibility decompositions.
func (f Form) Compat() bool {
	return f == NFKC || f == NFKD
}

// Composing reports whether f has a composition pass.
func (f Form) Composing() bool {
	return f == NFC || f == NFKC
}

// QuickCheckResult is the answer of a quick-check lookup per UAX #15.
type QuickCheckResult uint8

const (
	QuickCheckYes QuickCheckResult = iota
	QuickCheckMaybe
	QuickCheckNo
)

func (r QuickCheckResult) String() string {
	switch r {
	case QuickCheckYes:
		return "Yes"
	case QuickCheckMaybe:
		return "Maybe"
	case QuickCheckNo:
		return "No"
	}
	return "unknown"
}

// CombiningClass returns the Canonical Combining Class of cp. Class 0
// denotes a starter.
func CombiningClass(cp rune) uint8 {
	return pagetable.Lookup(cccIndex[:], cccPages[:], cp)
}

// QuickCheck returns the quick-check value of cp for the given form. A
// result of Yes guarantees cp is unchanged by normalization to f; Maybe
// means cp may interact with surrounding code points.
func QuickCheck(cp rune, f Form) QuickCheckResult {
	v := pagetable.Lookup(qcIndex[:], qcPages[:], cp)
	return QuickCheckResult(v >> (2 * uint(f)) & 0x3)
}

// Decompose returns the full decomposition of cp, or nil if cp has none.
// With compat set, compatibility mappings are included; otherwise only
// canonical mappings apply. The returned slice aliases the read-only table
// pool and must not be modified. Mappings are pre-expanded to their
// transitive closure, so a single lookup suffices. Hangul syllables are not
// in the table; they decompose algorithmically.
func Decompose(cp rune, compat bool) []rune {
	if compat {
		if off := pagetable.Lookup(compatIndex[:], compatPages[:], cp); off != 0 {
			return poolSequence(off)
		}
	}
	off := pagetable.Lookup(canonicalIndex[:], canonicalPages[:], cp)
	if off == 0 {
		return nil
	}
	return poolSequence(off)
}

func poolSequence(off uint16) []rune {
	n := int(decompPool[off])
	return decompPool[int(off)+1 : int(off)+1+n]
}

// Compose returns the primary canonical composite of the pair
// (starter, combiner), if one exists and is not a composition exclusion.
// Hangul syllables compose algorithmically and are never in the table.
func Compose(starter, combiner rune) (rune, bool) {
	key := uint64(starter)<<21 | uint64(combiner)
	i := sort.Search(len(compositionKeys), func(i int) bool {
		return compositionKeys[i] >= key
	})
	if i == len(compositionKeys) || compositionKeys[i] != key {
		return 0, false
	}
	return compositionValues[i], true
}

// Category is a coarse general category, enough to drive case-mapping
// context decisions.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryLetter
	CategoryMark
	CategoryNumber
)

const (
	flagCased        = 1 << 2
	flagCaseIgnorable = 1 << 3
	flagSoftDotted   = 1 << 4
	categoryMask     = 0x3
)

// GeneralCategory returns the coarse general category of cp.
func GeneralCategory(cp rune) Category {
	return Category(pagetable.Lookup(categoryIndex[:], categoryPages[:], cp) & categoryMask)
}

// IsCased reports whether cp is a cased letter.
func IsCased(cp rune) bool {
	return pagetable.Lookup(categoryIndex[:], categoryPages[:], cp)&flagCased != 0
}

// IsCaseIgnorable reports whether cp is transparent to word-boundary
// detection during title casing and to the final-sigma condition.
func IsCaseIgnorable(cp rune) bool {
	return pagetable.Lookup(categoryIndex[:], categoryPages[:], cp)&flagCaseIgnorable != 0
}

// IsSoftDotted reports whether cp carries the Soft_Dotted property.
func IsSoftDotted(cp rune) bool {
	return pagetable.Lookup(categoryIndex[:], categoryPages[:], cp)&flagSoftDotted != 0
}

// CaseKind selects one of the four case-mapping operations.
type CaseKind uint8

const (
	CaseUpper CaseKind = iota
	CaseLower
	CaseTitle
	CaseFold
)

func (k CaseKind) String() string {
	switch k {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	case CaseTitle:
		return "title"
	case CaseFold:
		return "fold"
	}
	return "unknown"
}

// CaseMapping returns the unconditional replacement sequence for cp under
// the given operation, or nil when cp maps to itself. Conditional and
// locale-dependent mappings are not in the table; the case mapper applies
// those as explicit rules. The returned slice aliases the read-only table
// pool and must not be modified.
func CaseMapping(cp rune, k CaseKind) []rune {
	var off uint16
	switch k {
	case CaseUpper:
		off = pagetable.Lookup(upperIndex[:], upperPages[:], cp)
	case CaseLower:
		off = pagetable.Lookup(lowerIndex[:], lowerPages[:], cp)
	case CaseTitle:
		off = pagetable.Lookup(titleIndex[:], titlePages[:], cp)
	case CaseFold:
		off = pagetable.Lookup(foldIndex[:], foldPages[:], cp)
	}
	if off == 0 {
		return nil
	}
	n := int(casePool[off])
	return casePool[int(off)+1 : int(off)+1+n]
}

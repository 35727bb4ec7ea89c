package normalize

import (
	"github.com/tkelman/utf8rewind/codepoint"
)

// Hangul syllables are composed and decomposed algorithmically, never
// through the mapping tables. The arithmetic follows chapter 3.12 of the
// Unicode core specification.

// decomposeHangul splits the precomposed syllable s into its L and V jamo
// and, when present, its T jamo. withT is false when the syllable has no
// trailing consonant.
func decomposeHangul(s rune) (l, v, t rune, withT bool) {
	index := s - codepoint.HangulSFirst
	l = codepoint.HangulLFirst + index/codepoint.HangulNCount
	v = codepoint.HangulVFirst + (index%codepoint.HangulNCount)/codepoint.HangulTCount
	t = codepoint.HangulTFirst + index%codepoint.HangulTCount
	return l, v, t, t != codepoint.HangulTFirst
}

// composeHangul fuses the pair (a, b) when it forms a larger Hangul unit:
// L jamo + V jamo make an LV syllable, and an LV syllable + T jamo make an
// LVT syllable. Only these two fusions exist.
func composeHangul(a, b rune) (rune, bool) {
	if codepoint.IsHangulJamoL(a) && codepoint.IsHangulJamoV(b) {
		return codepoint.HangulSFirst +
			(a-codepoint.HangulLFirst)*codepoint.HangulNCount +
			(b-codepoint.HangulVFirst)*codepoint.HangulTCount, true
	}
	if codepoint.IsHangulSyllable(a) && isHangulLV(a) && codepoint.IsHangulJamoT(b) {
		return a + b - codepoint.HangulTFirst, true
	}
	return 0, false
}

// isHangulLV reports whether the syllable s has no trailing consonant yet.
func isHangulLV(s rune) bool {
	return (s-codepoint.HangulSFirst)%codepoint.HangulTCount == 0
}

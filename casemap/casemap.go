// Package casemap implements locale-sensitive case mapping over UTF-8
// encoded byte spans: uppercase, lowercase, titlecase and case folding.
//
// Like the normalization transforms, the case operations substitute U+FFFD
// for malformed input and continue, write only whole code points into the
// destination, and measure the required output size when the destination
// is nil. Combining marks following a base character pass through in input
// order; only the Lithuanian soft-dotted rewrite stable-sorts the run it
// rewrites by Canonical Combining Class.
//
// The mapping tables carry only unconditional replacements. Context
// conditions (final sigma, the Lithuanian dot above) and the Turkish,
// Azeri and Lithuanian tailorings are evaluated as explicit rules here.
package casemap

import (
	"github.com/tkelman/utf8rewind/property"
	"github.com/tkelman/utf8rewind/stream"
)

const (
	dotlessI     = 0x0131
	dotTitleI    = 0x0130
	combiningDot = 0x0307
	sigma        = 0x03A3
	finalSigma   = 0x03C2
	smallSigma   = 0x03C3
)

// ToUpper uppercases src into dst using the default locale.
func ToUpper(dst, src []byte) (int, error) {
	return Default().ToUpper(dst, src)
}

// ToLower lowercases src into dst using the default locale.
func ToLower(dst, src []byte) (int, error) {
	return Default().ToLower(dst, src)
}

// ToTitle titlecases src into dst using the default locale.
func ToTitle(dst, src []byte) (int, error) {
	return Default().ToTitle(dst, src)
}

// Fold case-folds src into dst using the default locale.
func Fold(dst, src []byte) (int, error) {
	return Default().Fold(dst, src)
}

func (l Locale) ToUpper(dst, src []byte) (int, error) {
	return l.transform(property.CaseUpper, dst, src)
}

func (l Locale) ToLower(dst, src []byte) (int, error) {
	return l.transform(property.CaseLower, dst, src)
}

// ToTitle maps the first cased character of every word to its titlecase
// form and every following cased character to lowercase. Word boundaries
// are derived from the general category; case-ignorable characters such as
// combining marks and the apostrophe do not interrupt a word.
func (l Locale) ToTitle(dst, src []byte) (int, error) {
	return l.transform(property.CaseTitle, dst, src)
}

// Fold maps src to its case-folded form, for caseless comparison. The
// Turkish and Azeri locales use the Turkic fold of the dotted and dotless
// I.
func (l Locale) Fold(dst, src []byte) (int, error) {
	return l.transform(property.CaseFold, dst, src)
}

// maxRunMarks bounds the combining marks processed as one run, matching
// the Unicode Stream-Safe limit. A longer run is split; the remainder is
// handled as a run of its own.
const maxRunMarks = 30

type runMark struct {
	cp  rune
	ccc uint8
}

type markRun struct {
	marks [maxRunMarks]runMark
	n     int
}

// push appends a mark, preserving input order.
func (m *markRun) push(cp rune, ccc uint8) bool {
	if m.n >= maxRunMarks {
		return false
	}
	m.marks[m.n] = runMark{cp: cp, ccc: ccc}
	m.n++
	return true
}

// sortByClass stable-sorts the run by combining class via insertion sort;
// marks with equal classes keep their input order. Runs are short, so
// nothing fancier is warranted.
func (m *markRun) sortByClass() {
	for i := 1; i < m.n; i++ {
		cur := m.marks[i]
		j := i
		for ; j > 0; j-- {
			if m.marks[j-1].ccc <= cur.ccc {
				break
			}
			m.marks[j] = m.marks[j-1]
		}
		m.marks[j] = cur
	}
}

// removeFirst deletes the first occurrence of cp and reports whether one
// was present.
func (m *markRun) removeFirst(cp rune) bool {
	for i := 0; i < m.n; i++ {
		if m.marks[i].cp == cp {
			copy(m.marks[i:], m.marks[i+1:m.n])
			m.n--
			return true
		}
	}
	return false
}

// hasClass reports whether the run contains a mark of the given class.
func (m *markRun) hasClass(ccc uint8) bool {
	for i := 0; i < m.n; i++ {
		if m.marks[i].ccc == ccc {
			return true
		}
	}
	return false
}

// insertBeforeClass places cp directly before the first mark of class ccc,
// or at the end when none is present.
func (m *markRun) insertBeforeClass(cp rune, ccc uint8) {
	if m.n >= maxRunMarks {
		return
	}
	i := 0
	for ; i < m.n; i++ {
		if m.marks[i].ccc == ccc {
			break
		}
	}
	copy(m.marks[i+1:m.n+1], m.marks[i:m.n])
	m.marks[i] = runMark{cp: cp, ccc: ccc}
	m.n++
}

type caser struct {
	locale Locale
	kind   property.CaseKind
	src    []byte
	r      *stream.Reader
	w      *stream.Writer

	pending    rune
	hasPending bool

	prevCased bool // a cased character precedes, ignoring case-ignorables
	wordStart bool // titlecase: the next cased character starts a word
}

func (l Locale) transform(kind property.CaseKind, dst, src []byte) (int, error) {
	c := caser{
		locale:    l,
		kind:      kind,
		src:       src,
		r:         stream.NewReader(src),
		w:         stream.NewWriter(dst),
		wordStart: true,
	}

	for {
		base, ok := c.next()
		if !ok {
			break
		}
		var run markRun
		for {
			cp, ok := c.peek()
			if !ok {
				break
			}
			ccc := property.CombiningClass(cp)
			if ccc == 0 {
				break
			}
			if !run.push(cp, ccc) {
				break
			}
			c.next()
		}
		if err := c.emitRun(base, &run); err != nil {
			return c.w.Len(), err
		}
	}
	return c.w.Len(), nil
}

func (c *caser) peek() (rune, bool) {
	if !c.hasPending {
		cp, ok := c.r.NextReplace()
		if !ok {
			return 0, false
		}
		c.pending = cp
		c.hasPending = true
	}
	return c.pending, true
}

func (c *caser) next() (rune, bool) {
	cp, ok := c.peek()
	if ok {
		c.hasPending = false
	}
	return cp, ok
}

// followedByCased resolves the final-sigma condition: it scans forward
// past case-ignorable characters without consuming input.
func (c *caser) followedByCased() bool {
	if cp, ok := c.peek(); ok {
		if property.IsCased(cp) {
			return true
		}
		if !property.IsCaseIgnorable(cp) {
			return false
		}
	} else {
		return false
	}
	tr := stream.NewReader(c.src[c.r.Pos():])
	for {
		cp, ok := tr.NextReplace()
		if !ok {
			return false
		}
		if property.IsCased(cp) {
			return true
		}
		if !property.IsCaseIgnorable(cp) {
			return false
		}
	}
}

// emitRun applies locale rules and case mappings to one starter-run and
// writes the result.
func (c *caser) emitRun(base rune, run *markRun) error {
	kind := c.kind
	cased := property.IsCased(base)
	if kind == property.CaseTitle {
		if c.wordStart {
			kind = property.CaseTitle
		} else {
			kind = property.CaseLower
		}
	}

	handled, err := c.applyLocaleRules(base, run, kind)
	if err != nil {
		return err
	}
	if !handled {
		mapped := base
		switch {
		case kind == property.CaseLower && base == sigma:
			if c.prevCased && !c.followedByCased() {
				mapped = finalSigma
			} else {
				mapped = smallSigma
			}
			if err := c.w.Push(mapped); err != nil {
				return err
			}
		default:
			if err := c.pushMapping(base, kind); err != nil {
				return err
			}
		}
		if err := c.pushMarks(run); err != nil {
			return err
		}
	}

	// Word-boundary and sigma context track the base characters only;
	// combining marks are case-ignorable by definition.
	if cased {
		c.prevCased = true
		c.wordStart = false
	} else if !property.IsCaseIgnorable(base) {
		c.prevCased = false
		c.wordStart = true
	}
	return nil
}

// applyLocaleRules handles the Turkish/Azeri dotted-I rules and the
// Lithuanian dot above. It reports whether it wrote the run itself.
func (c *caser) applyLocaleRules(base rune, run *markRun, kind property.CaseKind) (bool, error) {
	upperLike := kind == property.CaseUpper || kind == property.CaseTitle

	if c.locale.turkic() {
		switch {
		case upperLike && base == 'i':
			// i uppercases to I with dot above; a following combining
			// dot above is absorbed into the bare I.
			mapped := rune(dotTitleI)
			if run.removeFirst(combiningDot) {
				mapped = 'I'
			}
			return true, c.pushRun(mapped, run)
		case kind == property.CaseLower && base == 'I':
			// I lowercases to dotless i; a following combining dot
			// above is absorbed instead.
			mapped := rune(dotlessI)
			if run.removeFirst(combiningDot) {
				mapped = 'i'
			}
			return true, c.pushRun(mapped, run)
		case kind == property.CaseLower && base == dotTitleI:
			return true, c.pushRun('i', run)
		case kind == property.CaseFold && base == 'I':
			return true, c.pushRun(dotlessI, run)
		case kind == property.CaseFold && base == dotTitleI:
			return true, c.pushRun('i', run)
		}
	}

	if c.locale == Lithuanian {
		switch {
		case upperLike && property.IsSoftDotted(base):
			// The dot above was only there to restore the soft dot;
			// uppercasing removes it and leaves the rewritten run in
			// canonical order. Runs whose base this rule never touches
			// keep their input order.
			run.sortByClass()
			run.removeFirst(combiningDot)
			if err := c.pushMapping(base, kind); err != nil {
				return true, err
			}
			return true, c.pushMarks(run)
		case kind == property.CaseLower && (base == 'I' || base == 'J' || base == 0x012E):
			// Retain the soft dot when a mark above follows.
			if run.hasClass(230) {
				mapped := base + 0x20 // I->i, J->j
				if base == 0x012E {
					mapped = 0x012F
				}
				run.insertBeforeClass(combiningDot, 230)
				return true, c.pushRun(mapped, run)
			}
		case kind == property.CaseLower && base == 0x00CC:
			return true, c.pushSequence([]rune{'i', combiningDot, 0x0300}, run)
		case kind == property.CaseLower && base == 0x00CD:
			return true, c.pushSequence([]rune{'i', combiningDot, 0x0301}, run)
		case kind == property.CaseLower && base == 0x0128:
			return true, c.pushSequence([]rune{'i', combiningDot, 0x0303}, run)
		}
	}
	return false, nil
}

func (c *caser) pushMapping(cp rune, kind property.CaseKind) error {
	seq := property.CaseMapping(cp, kind)
	if seq == nil {
		return c.w.Push(cp)
	}
	for _, m := range seq {
		if err := c.w.Push(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *caser) pushMarks(run *markRun) error {
	for i := 0; i < run.n; i++ {
		if err := c.w.Push(run.marks[i].cp); err != nil {
			return err
		}
	}
	return nil
}

func (c *caser) pushRun(base rune, run *markRun) error {
	if err := c.w.Push(base); err != nil {
		return err
	}
	return c.pushMarks(run)
}

func (c *caser) pushSequence(seq []rune, run *markRun) error {
	for _, cp := range seq {
		if err := c.w.Push(cp); err != nil {
			return err
		}
	}
	return c.pushMarks(run)
}

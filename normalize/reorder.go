package normalize

import (
	"github.com/tkelman/utf8rewind/property"
)

// maxCombining bounds the reorder buffer. The Unicode Stream-Safe format
// guarantees at most 30 non-starters between starters; the slack absorbs
// the starter itself and a decomposition straddling the boundary.
const maxCombining = 32

type mark struct {
	cp  rune
	ccc uint8
}

// reorderBuffer holds the current starter-run: a starter followed by the
// non-starters up to, but not including, the next starter. Non-starters
// are kept stable-sorted by Canonical Combining Class via insertion sort;
// the sequences are short, so nothing fancier is warranted.
type reorderBuffer struct {
	marks [maxCombining]mark
	n     int
}

func (rb *reorderBuffer) reset() {
	rb.n = 0
}

func (rb *reorderBuffer) empty() bool {
	return rb.n == 0
}

// insert places (cp, ccc) in CCC order, after any element with an equal or
// smaller class. Equal classes keep their input order. It reports false
// when the buffer is full; the caller must flush and retry.
func (rb *reorderBuffer) insert(cp rune, ccc uint8) bool {
	if rb.n >= maxCombining {
		return false
	}
	i := rb.n
	if ccc > 0 {
		for ; i > 0; i-- {
			prev := rb.marks[i-1]
			if prev.ccc <= ccc {
				break
			}
			rb.marks[i] = prev
		}
	}
	rb.marks[i] = mark{cp: cp, ccc: ccc}
	rb.n++
	return true
}

// compose runs the canonical composition pass over the run, replacing the
// starter with composites of table pairs. A mark is blocked when a mark
// kept before it has an equal or higher class.
func (rb *reorderBuffer) compose() {
	if rb.n < 2 || rb.marks[0].ccc != 0 {
		return
	}
	starter := rb.marks[0].cp
	kept := 1
	last := uint8(0)
	for i := 1; i < rb.n; i++ {
		m := rb.marks[i]
		if last < m.ccc {
			if c, ok := property.Compose(starter, m.cp); ok {
				starter = c
				rb.marks[0].cp = c
				continue
			}
		}
		rb.marks[kept] = m
		kept++
		last = m.ccc
	}
	rb.n = kept
}

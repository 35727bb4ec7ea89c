// Package pagetable builds and queries two-stage lookup tables keyed by
// code point. A table splits the codespace into fixed-size pages: a
// top-level index maps the upper bits of a code point to a page number,
// and the page maps the low bits to a value. Pages with identical contents
// are stored once, so the sparse Unicode property tables stay compact.
// Page 0 is always the default page, shared by every range of the
// codespace that holds no assignments.
package pagetable

import "fmt"

const (
	// PageBits is the number of low code-point bits resolved inside a page.
	PageBits = 10

	// PageSize is the number of values held by one page.
	PageSize = 1 << PageBits

	// IndexSize is the number of top-level index entries needed to cover
	// the codespace 0..U+10FFFF.
	IndexSize = (0x10FFFF + 1) >> PageBits
)

// Lookup resolves the value for cp in a two-stage table. Code points
// outside the codespace resolve to the zero value.
func Lookup[V any](index []uint16, pages [][PageSize]V, cp rune) V {
	if cp < 0 || cp > 0x10FFFF {
		var zero V
		return zero
	}
	return pages[index[cp>>PageBits]][cp&(PageSize-1)]
}

// Builder accumulates per-code-point assignments and emits the deduplicated
// index and page arrays. Values default to defaultValue; a page whose
// entries all equal defaultValue collapses into the shared default page.
type Builder[V comparable] struct {
	defaultValue V
	values       map[rune]V
}

func NewBuilder[V comparable](defaultValue V) *Builder[V] {
	return &Builder[V]{
		defaultValue: defaultValue,
		values:       map[rune]V{},
	}
}

// Set assigns v to cp. Assigning to a code point outside the codespace is
// an error.
func (b *Builder[V]) Set(cp rune, v V) error {
	if cp < 0 || cp > 0x10FFFF {
		return fmt.Errorf("code point must be >=U+0000 and <=U+10FFFF: U+%X", cp)
	}
	b.values[cp] = v
	return nil
}

// SetRange assigns v to every code point in from..to inclusive.
func (b *Builder[V]) SetRange(from, to rune, v V) error {
	if from > to {
		return fmt.Errorf("code point range must be from <= to: U+%X..U+%X", from, to)
	}
	for cp := from; cp <= to; cp++ {
		if err := b.Set(cp, v); err != nil {
			return err
		}
	}
	return nil
}

// Build materializes the two-stage arrays. Identical pages are detected by
// using the page contents as a map key and stored only once; the index
// refers every duplicate back to the first occurrence.
func (b *Builder[V]) Build() (index []uint16, pages [][PageSize]V) {
	var defaultPage [PageSize]V
	for i := range defaultPage {
		defaultPage[i] = b.defaultValue
	}

	index = make([]uint16, IndexSize)
	pages = append(pages, defaultPage)
	pageNums := map[[PageSize]V]uint16{
		defaultPage: 0,
	}

	for n := 0; n < IndexSize; n++ {
		page := defaultPage
		dirty := false
		base := rune(n) << PageBits
		for off := rune(0); off < PageSize; off++ {
			if v, ok := b.values[base|off]; ok {
				page[off] = v
				dirty = true
			}
		}
		if !dirty {
			continue
		}
		num, ok := pageNums[page]
		if !ok {
			num = uint16(len(pages))
			pageNums[page] = num
			pages = append(pages, page)
		}
		index[n] = num
	}
	return index, pages
}

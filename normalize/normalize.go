// Package normalize implements the Unicode normalization forms NFC, NFD,
// NFKC and NFKD over UTF-8 encoded byte spans.
//
// A transform makes a single pass over the input: each code point is
// decomposed (algorithmically for Hangul syllables, through the
// pre-expanded mapping tables otherwise), staged in a bounded reorder
// buffer that stable-sorts combining marks by Canonical Combining Class,
// and, for the composing forms, recombined before being written out.
// Malformed input never fails a transform; every malformed byte is
// replaced by U+FFFD, as normalization is defined to be robust.
package normalize

import (
	"github.com/tkelman/utf8rewind/codepoint"
	"github.com/tkelman/utf8rewind/property"
	"github.com/tkelman/utf8rewind/stream"
)

// Form identifies a normalization form.
type Form property.Form

const (
	NFC  = Form(property.NFC)
	NFD  = Form(property.NFD)
	NFKC = Form(property.NFKC)
	NFKD = Form(property.NFKD)
)

func (f Form) String() string {
	return property.Form(f).String()
}

// ParseForm resolves a form name such as "nfc" or "NFKD".
func ParseForm(name string) (Form, bool) {
	switch name {
	case "NFC", "nfc":
		return NFC, true
	case "NFD", "nfd":
		return NFD, true
	case "NFKC", "nfkc":
		return NFKC, true
	case "NFKD", "nfkd":
		return NFKD, true
	}
	return NFC, false
}

// Transform normalizes src into dst and returns the number of bytes
// written. A nil dst measures: the exact byte count of the full output is
// returned without writing. When dst is too small, as many whole code
// points as fit are written before codepoint.ErrNotEnoughSpace is
// returned.
func (f Form) Transform(dst, src []byte) (int, error) {
	n := normalizer{
		form:      property.Form(f),
		composing: property.Form(f).Composing(),
		compat:    property.Form(f).Compat(),
		w:         stream.NewWriter(dst),
	}

	r := stream.NewReader(src)
	for {
		cp, ok := r.NextReplace()
		if !ok {
			break
		}
		if err := n.push(cp); err != nil {
			return n.w.Len(), err
		}
	}
	if err := n.flush(); err != nil {
		return n.w.Len(), err
	}
	return n.w.Len(), nil
}

// Bytes returns the normalized form of src in a freshly allocated buffer.
func (f Form) Bytes(src []byte) []byte {
	size, err := f.Transform(nil, src)
	if err != nil {
		return nil
	}
	dst := make([]byte, size)
	if _, err := f.Transform(dst, src); err != nil {
		return nil
	}
	return dst
}

type normalizer struct {
	form      property.Form
	composing bool
	compat    bool
	rb        reorderBuffer
	w         *stream.Writer
}

// push decomposes one input code point and stages the result.
func (n *normalizer) push(cp rune) error {
	// Quick-check fast path: a starter that is unchanged by this form and
	// follows no pending state passes straight through. The composing
	// forms cannot take it, since a later combining mark may still fuse
	// with this code point.
	if !n.composing && n.rb.empty() &&
		property.CombiningClass(cp) == 0 &&
		property.QuickCheck(cp, n.form) == property.QuickCheckYes {
		return n.w.Push(cp)
	}

	if codepoint.IsHangulSyllable(cp) {
		l, v, t, withT := decomposeHangul(cp)
		if err := n.pushDecomposed(l); err != nil {
			return err
		}
		if err := n.pushDecomposed(v); err != nil {
			return err
		}
		if withT {
			return n.pushDecomposed(t)
		}
		return nil
	}

	if seq := property.Decompose(cp, n.compat); seq != nil {
		for _, d := range seq {
			if err := n.pushDecomposed(d); err != nil {
				return err
			}
		}
		return nil
	}
	return n.pushDecomposed(cp)
}

// pushDecomposed stages one fully decomposed code point in the reorder
// buffer, flushing the previous starter-run when a new starter begins.
func (n *normalizer) pushDecomposed(cp rune) error {
	ccc := property.CombiningClass(cp)
	if ccc == 0 {
		if n.composing && n.rb.n == 1 {
			if c, ok := composeHangul(n.rb.marks[0].cp, cp); ok {
				n.rb.marks[0].cp = c
				return nil
			}
		}
		if err := n.flush(); err != nil {
			return err
		}
	}
	if !n.rb.insert(cp, ccc) {
		// Run longer than the Stream-Safe bound; emit what we have and
		// start over mid-run.
		if err := n.flush(); err != nil {
			return err
		}
		n.rb.insert(cp, ccc)
	}
	return nil
}

// flush composes (for NFC/NFKC) and writes out the buffered starter-run.
// Flushing also happens on input exhaustion.
func (n *normalizer) flush() error {
	if n.rb.empty() {
		return nil
	}
	if n.composing {
		n.rb.compose()
	}
	for i := 0; i < n.rb.n; i++ {
		if err := n.w.Push(n.rb.marks[i].cp); err != nil {
			return err
		}
	}
	n.rb.reset()
	return nil
}

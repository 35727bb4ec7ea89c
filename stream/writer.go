package stream

import (
	"github.com/tkelman/utf8rewind/codepoint"
)

// Writer pushes code points into a UTF-8 byte span with bounds checking.
// A nil destination puts the writer in measuring mode: it counts the bytes
// the output needs without writing anything, and never reports
// codepoint.ErrNotEnoughSpace.
type Writer struct {
	dst     []byte
	n       int
	measure bool
}

func NewWriter(dst []byte) *Writer {
	return &Writer{
		dst:     dst,
		measure: dst == nil,
	}
}

// Len returns the number of bytes written, or needed in measuring mode.
func (w *Writer) Len() int {
	return w.n
}

// Measuring reports whether the writer counts instead of writing.
func (w *Writer) Measuring() bool {
	return w.measure
}

// Push encodes cp at the current position. Either the whole sequence is
// written or, when it does not fit, nothing is and
// codepoint.ErrNotEnoughSpace is returned.
func (w *Writer) Push(cp rune) error {
	size := codepoint.EncodedLength(cp)
	if size == 0 {
		return codepoint.ErrInvalidCharacter
	}
	if !w.measure {
		if w.n+size > len(w.dst) {
			return codepoint.ErrNotEnoughSpace
		}
		if _, err := codepoint.Write(w.dst[w.n:], cp); err != nil {
			return err
		}
	}
	w.n += size
	return nil
}

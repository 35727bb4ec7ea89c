// Package stream provides sequential and random access over UTF-8 encoded
// byte spans: a validating reader, a bounds-checked writer with a measuring
// mode, and code-point-oriented seeking.
package stream

import (
	"github.com/tkelman/utf8rewind/codepoint"
)

// Reader pulls one validated code point at a time from a UTF-8 byte span.
// It never reads past the span, even when the span ends in the middle of a
// sequence.
type Reader struct {
	src []byte
	pos int
}

func NewReader(src []byte) *Reader {
	return &Reader{src: src}
}

// Pos returns the byte position of the next read.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining reports whether any bytes are left to read.
func (r *Reader) Remaining() bool {
	return r.pos < len(r.src)
}

// Next decodes the next code point and advances past it. On malformed
// input it reports the error without advancing, so the caller decides
// between stopping (transcoders) and substituting (transforms). At the end
// of the span it returns codepoint.ErrInvalidData with a zero size.
func (r *Reader) Next() (rune, int, error) {
	cp, size, err := codepoint.Read(r.src[r.pos:])
	if err != nil {
		return cp, size, err
	}
	r.pos += size
	return cp, size, nil
}

// NextReplace decodes the next code point, substituting U+FFFD for a
// malformed sequence. A malformed sequence consumes exactly one byte, so
// forward progress is guaranteed. The second return value is false once
// the span is exhausted.
func (r *Reader) NextReplace() (rune, bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	cp, size, _ := codepoint.Read(r.src[r.pos:])
	r.pos += size
	return cp, true
}

// Peek decodes the code point at the current position without advancing.
func (r *Reader) Peek() (rune, int, error) {
	return codepoint.Read(r.src[r.pos:])
}

// Length returns the number of code points in src. Every malformed byte
// counts as one code point.
func Length(src []byte) int {
	n := 0
	r := NewReader(src)
	for {
		if _, ok := r.NextReplace(); !ok {
			return n
		}
		n++
	}
}

package stream

import (
	"io"

	"github.com/tkelman/utf8rewind/codepoint"
)

// Seek returns a new byte position within text after moving offset code
// points in the given direction. pos is the current byte position; whence
// is one of io.SeekStart, io.SeekCurrent and io.SeekEnd.
//
//   - io.SeekStart: advance offset code points forward from the start of
//     text. Negative offsets clamp to the start.
//   - io.SeekCurrent: positive offsets advance from pos; negative offsets
//     step back one lead byte at a time, skipping continuation bytes, down
//     to the start.
//   - io.SeekEnd: step back |offset| code points from the end of text.
//
// An offset that resolves outside text clamps to the nearest boundary.
// Moving forward, every malformed byte counts as one code point, so
// progress is guaranteed. Moving backward, continuation bytes are skipped
// up to the preceding lead byte, so stray continuation bytes are counted
// together with the code point before them.
func Seek(text []byte, pos, offset, whence int) int {
	switch whence {
	case io.SeekStart:
		if offset <= 0 {
			return 0
		}
		return forward(text, 0, offset)
	case io.SeekCurrent:
		if pos < 0 {
			pos = 0
		}
		if pos > len(text) {
			pos = len(text)
		}
		if offset >= 0 {
			return forward(text, pos, offset)
		}
		return backward(text, pos, -offset)
	case io.SeekEnd:
		if offset >= 0 {
			return backward(text, len(text), offset)
		}
		return backward(text, len(text), -offset)
	}
	return pos
}

func forward(text []byte, pos, count int) int {
	for ; count > 0 && pos < len(text); count-- {
		// A malformed sequence reads as a single byte.
		_, size, _ := codepoint.Read(text[pos:])
		pos += size
	}
	return pos
}

func backward(text []byte, pos, count int) int {
	for ; count > 0 && pos > 0; count-- {
		pos--
		// Skip continuation bytes to land on a lead byte.
		for pos > 0 && text[pos]&0xC0 == 0x80 {
			pos--
		}
	}
	return pos
}

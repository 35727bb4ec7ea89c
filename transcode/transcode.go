// Package transcode converts between UTF-8 and the sister Unicode
// encodings: UTF-16 with surrogate pairs, UTF-32, UCS-2 and the platform
// wide form.
//
// All conversions share the same convention: the destination comes first,
// the count returned is in destination units (bytes for []byte, 16-bit
// units for []uint16, code points for []rune), and a nil destination puts
// the conversion in measuring mode, returning the exact count the full
// output needs. On a destination that is too small, as many whole code
// points as fit are written before codepoint.ErrNotEnoughSpace is
// returned; a surrogate pair is written atomically or not at all.
//
// Transcoders stop at the first malformed input sequence and report it,
// unlike the normalization and case-mapping transforms, which substitute
// U+FFFD and continue.
package transcode

import (
	"github.com/tkelman/utf8rewind/codepoint"
	"github.com/tkelman/utf8rewind/stream"
)

const (
	surrogateOffset = 0x10000
	surrogateShift  = 10
	surrogateMask   = 0x3FF
)

// UTF8ToUTF16 converts UTF-8 encoded src to UTF-16 code units. Code points
// above the BMP emit a surrogate pair; the pair is written only if both
// halves fit.
func UTF8ToUTF16(dst []uint16, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, codepoint.ErrInvalidData
	}

	n := 0
	r := stream.NewReader(src)
	for r.Remaining() {
		cp, _, err := r.Next()
		if err != nil {
			return n, err
		}
		if cp <= codepoint.MaxBasicMultilingualPlane {
			if dst != nil {
				if n+1 > len(dst) {
					return n, codepoint.ErrNotEnoughSpace
				}
				dst[n] = uint16(cp)
			}
			n++
		} else {
			if dst != nil {
				if n+2 > len(dst) {
					return n, codepoint.ErrNotEnoughSpace
				}
				cp -= surrogateOffset
				dst[n] = uint16(codepoint.SurrogateHighStart + (cp >> surrogateShift))
				dst[n+1] = uint16(codepoint.SurrogateLowStart + (cp & surrogateMask))
			}
			n += 2
		}
	}
	return n, nil
}

// UTF8ToUTF32 converts UTF-8 encoded src to UTF-32 code units, one unit
// per code point.
func UTF8ToUTF32(dst []rune, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, codepoint.ErrInvalidData
	}

	n := 0
	r := stream.NewReader(src)
	for r.Remaining() {
		cp, _, err := r.Next()
		if err != nil {
			return n, err
		}
		if dst != nil {
			if n+1 > len(dst) {
				return n, codepoint.ErrNotEnoughSpace
			}
			dst[n] = cp
		}
		n++
	}
	return n, nil
}

// UTF16ToUTF8 converts UTF-16 code units to UTF-8 encoded bytes. An
// unpaired high surrogate reports codepoint.ErrUnmatchedHighSurrogate; a
// low surrogate without a preceding high one reports
// codepoint.ErrUnmatchedLowSurrogate.
func UTF16ToUTF8(dst []byte, src []uint16) (int, error) {
	if len(src) == 0 {
		return 0, codepoint.ErrInvalidData
	}

	w := stream.NewWriter(dst)
	for i := 0; i < len(src); i++ {
		cp := rune(src[i])
		switch {
		case codepoint.IsHighSurrogate(cp):
			if i+1 >= len(src) {
				return w.Len(), codepoint.ErrUnmatchedHighSurrogate
			}
			low := rune(src[i+1])
			if !codepoint.IsLowSurrogate(low) {
				return w.Len(), codepoint.ErrUnmatchedHighSurrogate
			}
			i++
			cp = surrogateOffset +
				(cp-codepoint.SurrogateHighStart)<<surrogateShift +
				(low - codepoint.SurrogateLowStart)
		case codepoint.IsLowSurrogate(cp):
			return w.Len(), codepoint.ErrUnmatchedLowSurrogate
		}
		if err := w.Push(cp); err != nil {
			return w.Len(), err
		}
	}
	return w.Len(), nil
}

// UTF32ToUTF8 converts UTF-32 code units to UTF-8 encoded bytes. Surrogate
// code units and values above U+10FFFF report
// codepoint.ErrInvalidCharacter.
func UTF32ToUTF8(dst []byte, src []rune) (int, error) {
	if len(src) == 0 {
		return 0, codepoint.ErrInvalidData
	}

	w := stream.NewWriter(dst)
	for _, cp := range src {
		if err := w.Push(cp); err != nil {
			return w.Len(), err
		}
	}
	return w.Len(), nil
}

// ConvertUCS2 converts a single UCS-2 code point to UTF-8. UCS-2 has no
// surrogate pairing, so surrogate input reports
// codepoint.ErrUnhandledSurrogatePair.
func ConvertUCS2(dst []byte, u uint16) (int, error) {
	cp := rune(u)
	if codepoint.IsSurrogate(cp) {
		return 0, codepoint.ErrUnhandledSurrogatePair
	}
	w := stream.NewWriter(dst)
	if err := w.Push(cp); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

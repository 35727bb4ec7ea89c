package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkelman/utf8rewind/codepoint"
)

func TestUTF8ToUTF16_Character(t *testing.T) {
	o := make([]uint16, 256)
	n, err := UTF8ToUTF16(o, []byte("\xE0\xA4\x9C"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint16(0x091C), o[0])
}

func TestUTF8ToUTF16_String(t *testing.T) {
	o := make([]uint16, 256)
	n, err := UTF8ToUTF16(o, []byte("\xE0\xA4\x9C\xE0\xA4\xA1\xE0\xA4\xA4"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []uint16{0x091C, 0x0921, 0x0924}, o[:n])
}

func TestUTF8ToUTF16_SurrogatePair(t *testing.T) {
	o := make([]uint16, 256)
	n, err := UTF8ToUTF16(o, []byte("\xF0\x9F\x98\xA4"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uint16{0xD83D, 0xDE24}, o[:n])
}

func TestUTF8ToUTF16_PairIsAtomic(t *testing.T) {
	// "Ba" plus U+10FFFF into four units: the pair fills the buffer
	// exactly; with one unit less, neither half may be written.
	i := []byte("Ba\xF4\x8F\xBF\xBF")

	o := make([]uint16, 4)
	n, err := UTF8ToUTF16(o, i)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []uint16{'B', 'a', 0xDBFF, 0xDFFF}, o[:n])

	short := make([]uint16, 3)
	n, err = UTF8ToUTF16(short, i)
	assert.ErrorIs(t, err, codepoint.ErrNotEnoughSpace)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint16(0), short[2])
}

func TestUTF8ToUTF16_TruncatedTail(t *testing.T) {
	// One whole code point is converted, then the truncated lead reports
	// the error.
	o := make([]uint16, 256)
	n, err := UTF8ToUTF16(o, []byte("\xE1\x8C\x8A\xCE"))
	assert.ErrorIs(t, err, codepoint.ErrInvalidData)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint16(0x130A), o[0])
}

func TestUTF8ToUTF16_EmptyInput(t *testing.T) {
	o := make([]uint16, 256)
	n, err := UTF8ToUTF16(o, nil)
	assert.ErrorIs(t, err, codepoint.ErrInvalidData)
	assert.Equal(t, 0, n)
}

func TestUTF8ToUTF16_Measuring(t *testing.T) {
	i := []byte("Ba\xF4\x8F\xBF\xBF\xE0\xA4\x9C")
	n, err := UTF8ToUTF16(nil, i)
	require.NoError(t, err)

	o := make([]uint16, 256)
	written, err := UTF8ToUTF16(o, i)
	require.NoError(t, err)
	assert.Equal(t, written, n)
}

func TestUTF16ToUTF8_String(t *testing.T) {
	o := make([]byte, 256)
	n, err := UTF16ToUTF8(o, []uint16{0x03BA, 0x1F79, 0x03C3})
	require.NoError(t, err)
	assert.Equal(t, "\xCE\xBA\xE1\xBD\xB9\xCF\x83", string(o[:n]))
}

func TestUTF16ToUTF8_SurrogatePair(t *testing.T) {
	o := make([]byte, 256)
	n, err := UTF16ToUTF8(o, []uint16{0xD83D, 0xDE24})
	require.NoError(t, err)
	assert.Equal(t, "\xF0\x9F\x98\xA4", string(o[:n]))
}

func TestUTF16ToUTF8_UnmatchedSurrogates(t *testing.T) {
	tests := []struct {
		name string
		src  []uint16
		err  error
	}{
		{"high at end", []uint16{'a', 0xD83D}, codepoint.ErrUnmatchedHighSurrogate},
		{"high before bmp unit", []uint16{0xD83D, 0x0041}, codepoint.ErrUnmatchedHighSurrogate},
		{"lone low", []uint16{0xDE24, 0x0041}, codepoint.ErrUnmatchedLowSurrogate},
		{"reversed pair", []uint16{0xDE24, 0xD83D}, codepoint.ErrUnmatchedLowSurrogate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := make([]byte, 256)
			_, err := UTF16ToUTF8(o, tt.src)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUTF32ToUTF8_String(t *testing.T) {
	o := make([]byte, 256)
	n, err := UTF32ToUTF8(o, []rune{0x0393, 0x03B1, 0x03B6, 0x1F624})
	require.NoError(t, err)
	assert.Equal(t, "\xCE\x93\xCE\xB1\xCE\xB6\xF0\x9F\x98\xA4", string(o[:n]))
}

func TestUTF32ToUTF8_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		src  []rune
	}{
		{"surrogate code unit", []rune{0xD800}},
		{"above max legal", []rune{0x110000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := make([]byte, 256)
			_, err := UTF32ToUTF8(o, tt.src)
			assert.ErrorIs(t, err, codepoint.ErrInvalidCharacter)
		})
	}
}

func TestUTF32ToUTF8_WholeCodePointsOnOverflow(t *testing.T) {
	o := make([]byte, 4)
	n, err := UTF32ToUTF8(o, []rune{'a', 0x0800, 0x0041})
	assert.ErrorIs(t, err, codepoint.ErrNotEnoughSpace)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\xE0\xA0\x80", string(o[:n]))
}

func TestRoundTripViaUTF32MatchesUTF16(t *testing.T) {
	// utf8 -> utf32 -> utf8 -> utf16 must equal utf8 -> utf16 directly.
	src := []byte("Bj\xC3\xB6rn \xF0\x9F\x98\xA4 \xE0\xA4\x9C")

	u32 := make([]rune, 64)
	n32, err := UTF8ToUTF32(u32, src)
	require.NoError(t, err)

	back := make([]byte, 64)
	nb, err := UTF32ToUTF8(back, u32[:n32])
	require.NoError(t, err)
	assert.Equal(t, string(src), string(back[:nb]))

	direct := make([]uint16, 64)
	nd, err := UTF8ToUTF16(direct, src)
	require.NoError(t, err)

	via := make([]uint16, 64)
	nv, err := UTF8ToUTF16(via, back[:nb])
	require.NoError(t, err)
	assert.Equal(t, direct[:nd], via[:nv])
}

func TestConvertUCS2(t *testing.T) {
	o := make([]byte, 256)
	pos := 0
	for _, u := range []uint16{0x3041, 0x304B, 0x3060, 0x3074} {
		n, err := ConvertUCS2(o[pos:], u)
		require.NoError(t, err)
		pos += n
	}
	assert.Equal(t, "\xE3\x81\x81\xE3\x81\x8B\xE3\x81\xA0\xE3\x81\xB4", string(o[:pos]))
}

func TestConvertUCS2_Surrogate(t *testing.T) {
	o := make([]byte, 256)
	_, err := ConvertUCS2(o, 0xD83D)
	assert.ErrorIs(t, err, codepoint.ErrUnhandledSurrogatePair)

	_, err = ConvertUCS2(o, 0xDE24)
	assert.ErrorIs(t, err, codepoint.ErrUnhandledSurrogatePair)
}

func TestConvertUCS2_Measuring(t *testing.T) {
	n, err := ConvertUCS2(nil, 0x3041)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWide(t *testing.T) {
	src := []byte("p\xC3\xA5 xylofon")

	n, err := UTF8ToWide(nil, src)
	require.NoError(t, err)

	wide := make([]Wide, n)
	written, err := UTF8ToWide(wide, src)
	require.NoError(t, err)
	assert.Equal(t, n, written)

	back := make([]byte, 64)
	nb, err := WideToUTF8(back, wide[:written])
	require.NoError(t, err)
	assert.Equal(t, string(src), string(back[:nb]))
}

package codepoint

import (
	"errors"
	"fmt"
	"testing"
)

func TestDecodedLength(t *testing.T) {
	tests := []struct {
		lead   byte
		length int
	}{
		{0x00, 1},
		{0x41, 1},
		{0x7F, 1},
		{0x80, 0},
		{0xBF, 0},
		{0xC0, 2},
		{0xC2, 2},
		{0xDF, 2},
		{0xE0, 3},
		{0xEF, 3},
		{0xF0, 4},
		{0xF4, 4},
		{0xF7, 4},
		{0xF8, 0},
		{0xFB, 0},
		{0xFC, 0},
		{0xFD, 0},
		{0xFE, 0},
		{0xFF, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#02x", tt.lead), func(t *testing.T) {
			length := DecodedLength(tt.lead)
			if length != tt.length {
				t.Fatalf("unexpected length: want: %v, got: %v", tt.length, length)
			}
			if LeadValid(tt.lead) != (tt.length != 0) {
				t.Fatalf("LeadValid(%#02x) disagrees with DecodedLength", tt.lead)
			}
		})
	}
}

func TestEncodedLength(t *testing.T) {
	tests := []struct {
		cp     rune
		length int
	}{
		{0x0000, 1},
		{0x007F, 1},
		{0x0080, 2},
		{0x07FF, 2},
		{0x0800, 3},
		{0xD7FF, 3},
		{0xD800, 0},
		{0xDFFF, 0},
		{0xE000, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x10FFFF, 4},
		{0x110000, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.cp), func(t *testing.T) {
			length := EncodedLength(tt.cp)
			if length != tt.length {
				t.Fatalf("unexpected length: want: %v, got: %v", tt.length, length)
			}
		})
	}
}

func TestRead_WellFormed(t *testing.T) {
	seq := func(b ...byte) []byte {
		return b
	}

	// Sequences at both range boundaries of each length.
	tests := []struct {
		src  []byte
		cp   rune
		size int
	}{
		{seq(0x00), 0x0000, 1},
		{seq(0x7F), 0x007F, 1},
		{seq(0xC2, 0x80), 0x0080, 2},
		{seq(0xDF, 0xBF), 0x07FF, 2},
		{seq(0xE0, 0xA0, 0x80), 0x0800, 3},
		{seq(0xED, 0x9F, 0xBF), 0xD7FF, 3},
		{seq(0xEE, 0x80, 0x80), 0xE000, 3},
		{seq(0xEF, 0xBF, 0xBF), 0xFFFF, 3},
		{seq(0xF0, 0x90, 0x80, 0x80), 0x10000, 4},
		{seq(0xF4, 0x8F, 0xBF, 0xBF), 0x10FFFF, 4},
		{seq(0xC3, 0xB6), 0x00F6, 2},
		{seq(0xF0, 0x9F, 0x98, 0xA4), 0x1F624, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.cp), func(t *testing.T) {
			cp, size, err := Read(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cp != tt.cp || size != tt.size {
				t.Fatalf("want: (U+%04X, %v), got: (U+%04X, %v)", tt.cp, tt.size, cp, size)
			}
		})
	}
}

func TestRead_IllFormed(t *testing.T) {
	seq := func(b ...byte) []byte {
		return b
	}

	tests := []struct {
		name string
		src  []byte
		err  error
	}{
		{"empty", nil, ErrInvalidData},
		{"continuation byte as lead", seq(0x80), ErrInvalidCharacter},
		{"five byte lead", seq(0xF8, 0x80, 0x80, 0x80, 0x80), ErrInvalidCharacter},
		{"six byte lead", seq(0xFC, 0x80, 0x80, 0x80, 0x80, 0x80), ErrInvalidCharacter},
		{"lead 0xFE", seq(0xFE), ErrInvalidCharacter},
		{"lead 0xFF", seq(0xFF), ErrInvalidCharacter},
		{"truncated two byte", seq(0xC3), ErrInvalidData},
		{"truncated three byte", seq(0xE1, 0x8C), ErrInvalidData},
		{"truncated four byte", seq(0xF0, 0x9F, 0x98), ErrInvalidData},
		{"bad continuation", seq(0xC3, 0x41), ErrInvalidCharacter},
		{"bad second continuation", seq(0xE1, 0x8C, 0x41), ErrInvalidCharacter},
		{"overlong two byte", seq(0xC0, 0xAF), ErrInvalidCharacter},
		{"overlong three byte", seq(0xE0, 0x80, 0xAF), ErrInvalidCharacter},
		{"overlong four byte", seq(0xF0, 0x80, 0x80, 0xAF), ErrInvalidCharacter},
		{"encoded surrogate", seq(0xED, 0xA0, 0x80), ErrInvalidCharacter},
		{"above max legal", seq(0xF4, 0x90, 0x80, 0x80), ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, size, err := Read(tt.src)
			if !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error: want: %v, got: %v", tt.err, err)
			}
			if cp != Replacement {
				t.Fatalf("want replacement character, got: U+%04X", cp)
			}
			wantSize := 1
			if len(tt.src) == 0 {
				wantSize = 0
			}
			if size != wantSize {
				t.Fatalf("unexpected size: want: %v, got: %v", wantSize, size)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		cp   rune
		want []byte
	}{
		{0x0041, []byte{0x41}},
		{0x00F6, []byte{0xC3, 0xB6}},
		{0x0800, []byte{0xE0, 0xA0, 0x80}},
		{0x130A, []byte{0xE1, 0x8C, 0x8A}},
		{0xFFFD, []byte{0xEF, 0xBF, 0xBD}},
		{0x1F624, []byte{0xF0, 0x9F, 0x98, 0xA4}},
		{0x10FFFF, []byte{0xF4, 0x8F, 0xBF, 0xBF}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("U+%04X", tt.cp), func(t *testing.T) {
			buf := make([]byte, 4)
			size, err := Write(buf, tt.cp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if size != len(tt.want) {
				t.Fatalf("unexpected size: want: %v, got: %v", len(tt.want), size)
			}
			for i, b := range tt.want {
				if buf[i] != b {
					t.Fatalf("unexpected bytes: want: %#v, got: %#v", tt.want, buf[:size])
				}
			}

			// Measuring mode must agree with the bytes written.
			measured, err := Write(nil, tt.cp)
			if err != nil {
				t.Fatalf("unexpected error in measuring mode: %v", err)
			}
			if measured != size {
				t.Fatalf("measuring mode disagrees: want: %v, got: %v", size, measured)
			}
		})
	}
}

func TestWrite_Errors(t *testing.T) {
	tests := []struct {
		name string
		cp   rune
		dst  []byte
		err  error
	}{
		{"surrogate", 0xD800, make([]byte, 4), ErrInvalidCharacter},
		{"above max legal", 0x110000, make([]byte, 4), ErrInvalidCharacter},
		{"negative", -1, make([]byte, 4), ErrInvalidCharacter},
		{"buffer too small", 0x00F6, make([]byte, 1), ErrNotEnoughSpace},
		{"buffer empty", 0x0041, []byte{}, ErrNotEnoughSpace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := Write(tt.dst, tt.cp)
			if !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error: want: %v, got: %v", tt.err, err)
			}
			if size != 0 {
				t.Fatalf("unexpected size: want: 0, got: %v", size)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Every scalar value must survive encode then decode, and the byte
	// count must match EncodedLength.
	for cp := rune(0); cp <= MaxLegalUnicode; cp++ {
		if IsSurrogate(cp) {
			continue
		}
		buf := make([]byte, 4)
		size, err := Write(buf, cp)
		if err != nil {
			t.Fatalf("U+%04X: unexpected encode error: %v", cp, err)
		}
		if size != EncodedLength(cp) {
			t.Fatalf("U+%04X: unexpected size: want: %v, got: %v", cp, EncodedLength(cp), size)
		}
		got, n, err := Read(buf[:size])
		if err != nil {
			t.Fatalf("U+%04X: unexpected decode error: %v", cp, err)
		}
		if got != cp || n != size {
			t.Fatalf("U+%04X: round trip mismatch: got: (U+%04X, %v)", cp, got, n)
		}
	}
}

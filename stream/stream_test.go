package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/tkelman/utf8rewind/codepoint"
)

func TestReader_Next(t *testing.T) {
	r := NewReader([]byte("Bj\xC3\xB6rn"))

	want := []rune{'B', 'j', 0xF6, 'r', 'n'}
	for _, cp := range want {
		got, _, err := r.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != cp {
			t.Fatalf("want: U+%04X, got: U+%04X", cp, got)
		}
	}
	if _, _, err := r.Next(); !errors.Is(err, codepoint.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData at end of span, got: %v", err)
	}
}

func TestReader_NextStopsOnMalformed(t *testing.T) {
	r := NewReader([]byte("a\xC3"))

	if cp, _, err := r.Next(); err != nil || cp != 'a' {
		t.Fatalf("unexpected first read: (U+%04X, %v)", cp, err)
	}
	pos := r.Pos()
	if _, _, err := r.Next(); !errors.Is(err, codepoint.ErrInvalidData) {
		t.Fatalf("want ErrInvalidData, got: %v", err)
	}
	if r.Pos() != pos {
		t.Fatalf("reader advanced past a malformed sequence")
	}
}

func TestReader_NextReplace(t *testing.T) {
	// Each malformed byte is replaced and consumes exactly one byte.
	r := NewReader([]byte("a\x80\xC3\xB6\xFFz"))

	var got []rune
	for {
		cp, ok := r.NextReplace()
		if !ok {
			break
		}
		got = append(got, cp)
	}
	want := []rune{'a', 0xFFFD, 0xF6, 0xFFFD, 'z'}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: want: %v, got: %v", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %v: want: U+%04X, got: U+%04X", i, want[i], got[i])
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hunter2", 7},
		{"mixed", "Bj\xC3\xB6rn Zonderland", 16},
		{"four byte", "\xF0\x9F\x98\xA4", 1},
		{"malformed counts per byte", "a\x80\x80b", 4},
		{"truncated tail", "a\xE1\x8C", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length([]byte(tt.src)); got != tt.want {
				t.Fatalf("want: %v, got: %v", tt.want, got)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	buf := make([]byte, 6)
	w := NewWriter(buf)

	for _, cp := range []rune{'A', 0xF6, 0x800} {
		if err := w.Push(cp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if w.Len() != 6 {
		t.Fatalf("unexpected length: want: 6, got: %v", w.Len())
	}
	want := "A\xC3\xB6\xE0\xA0\x80"
	if string(buf) != want {
		t.Fatalf("unexpected bytes: want: %#v, got: %#v", want, string(buf))
	}
}

func TestWriter_NotEnoughSpace(t *testing.T) {
	buf := make([]byte, 2)
	w := NewWriter(buf)

	if err := w.Push('A'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two bytes needed, one remaining: nothing may be written.
	if err := w.Push(0xF6); !errors.Is(err, codepoint.ErrNotEnoughSpace) {
		t.Fatalf("want ErrNotEnoughSpace, got: %v", err)
	}
	if w.Len() != 1 {
		t.Fatalf("partial sequence written: length %v", w.Len())
	}
}

func TestWriter_MeasuringMode(t *testing.T) {
	w := NewWriter(nil)

	for _, cp := range []rune{'A', 0xF6, 0x800, 0x1F624} {
		if err := w.Push(cp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if w.Len() != 1+2+3+4 {
		t.Fatalf("unexpected measured length: want: 10, got: %v", w.Len())
	}
}

func TestSeek_Set(t *testing.T) {
	text := []byte("Bj\xC3\xB6rn")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4}, // past the two-byte sequence
		{5, 6},
		{100, 6}, // clamped to the end
		{-3, 0},  // clamped to the start
	}
	for _, tt := range tests {
		if got := Seek(text, 0, tt.offset, io.SeekStart); got != tt.want {
			t.Fatalf("offset %v: want: %v, got: %v", tt.offset, tt.want, got)
		}
	}
}

func TestSeek_Current(t *testing.T) {
	text := []byte("\xE0\xA4\x9C\xE0\xA4\xA1\xE0\xA4\xA4")

	if got := Seek(text, 3, 1, io.SeekCurrent); got != 6 {
		t.Fatalf("forward: want: 6, got: %v", got)
	}
	if got := Seek(text, 6, -2, io.SeekCurrent); got != 0 {
		t.Fatalf("backward: want: 0, got: %v", got)
	}
	if got := Seek(text, 3, -5, io.SeekCurrent); got != 0 {
		t.Fatalf("backward clamp: want: 0, got: %v", got)
	}
}

func TestSeek_End(t *testing.T) {
	text := []byte("Bj\xC3\xB6rn")

	if got := Seek(text, 0, 0, io.SeekEnd); got != len(text) {
		t.Fatalf("want: %v, got: %v", len(text), got)
	}
	if got := Seek(text, 0, 2, io.SeekEnd); got != 4 {
		t.Fatalf("want: 4, got: %v", got)
	}
	if got := Seek(text, 0, 4, io.SeekEnd); got != 1 {
		t.Fatalf("want: 1, got: %v", got)
	}
	if got := Seek(text, 0, 100, io.SeekEnd); got != 0 {
		t.Fatalf("want: 0, got: %v", got)
	}
}

func TestSeek_MalformedCountsAsOne(t *testing.T) {
	text := []byte("a\x80\x80b")

	if got := Seek(text, 0, 3, io.SeekStart); got != 3 {
		t.Fatalf("forward over malformed: want: 3, got: %v", got)
	}
}

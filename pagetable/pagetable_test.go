package pagetable

import (
	"testing"
)

func TestBuildAndLookup(t *testing.T) {
	b := NewBuilder[uint8](0)
	entries := map[rune]uint8{
		0x0300:  230,
		0x0316:  220,
		0x0327:  202,
		0x3099:  8,
		0x10FFF: 77,
	}
	for cp, v := range entries {
		if err := b.Set(cp, v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	index, pages := b.Build()

	if len(index) != IndexSize {
		t.Fatalf("unexpected index size: want: %v, got: %v", IndexSize, len(index))
	}

	for cp, v := range entries {
		if got := Lookup(index, pages, cp); got != v {
			t.Fatalf("U+%04X: want: %v, got: %v", cp, v, got)
		}
	}

	// Unassigned code points resolve to the default value, including ones
	// inside an allocated page.
	for _, cp := range []rune{0x0000, 0x0041, 0x0301, 0x2000, 0x10FFFF} {
		if got := Lookup(index, pages, cp); got != 0 {
			t.Fatalf("U+%04X: want default, got: %v", cp, got)
		}
	}

	// Out of codespace resolves to the zero value.
	if got := Lookup(index, pages, -1); got != 0 {
		t.Fatalf("negative code point: want 0, got: %v", got)
	}
	if got := Lookup(index, pages, 0x110000); got != 0 {
		t.Fatalf("code point above U+10FFFF: want 0, got: %v", got)
	}
}

func TestBuild_DeduplicatesPages(t *testing.T) {
	b := NewBuilder[uint8](0)
	// Identical content in two distant pages must share storage.
	if err := b.Set(0x0005, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Set(0x8005, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	index, pages := b.Build()

	// default page + one shared page
	if len(pages) != 2 {
		t.Fatalf("unexpected page count: want: 2, got: %v", len(pages))
	}
	if index[0x0005>>PageBits] != index[0x8005>>PageBits] {
		t.Fatalf("duplicate pages were not shared")
	}
}

func TestBuild_DefaultValue(t *testing.T) {
	b := NewBuilder[uint8](3)
	if err := b.SetRange(0x40, 0x5A, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	index, pages := b.Build()

	if got := Lookup(index, pages, 0x41); got != 7 {
		t.Fatalf("want: 7, got: %v", got)
	}
	if got := Lookup(index, pages, 0x20); got != 3 {
		t.Fatalf("want default 3, got: %v", got)
	}
	if got := Lookup(index, pages, 0x20000); got != 3 {
		t.Fatalf("want default 3 from shared page, got: %v", got)
	}
}

func TestSet_OutOfCodespace(t *testing.T) {
	b := NewBuilder[uint8](0)
	if err := b.Set(0x110000, 1); err == nil {
		t.Fatalf("expected an error")
	}
	if err := b.Set(-1, 1); err == nil {
		t.Fatalf("expected an error")
	}
	if err := b.SetRange(5, 4, 1); err == nil {
		t.Fatalf("expected an error")
	}
}

package normalize

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tkelman/utf8rewind/codepoint"
)

func TestTransform_Decompose(t *testing.T) {
	tests := []struct {
		name string
		form Form
		src  string
		want string
	}{
		{"ascii passthrough", NFD, "Zonderland", "Zonderland"},
		{"mixed ascii and two byte", NFD, "Bj\xC3\xB6rn Zonderland", "Bjo\xCC\x88rn Zonderland"},
		{"latin-1 precomposed", NFD, "\xC3\x80", "A\xCC\x80"},
		{"cjk compatibility ideograph", NFD, "\xF0\xAF\xA8\x9D", "\xF0\xAA\x98\x80"},
		{"already decomposed", NFD, "A\xCC\x80", "A\xCC\x80"},
		{"grave shortcut", NFD, "\xCD\x80", "\xCC\x80"},
		{"compat kept by nfd", NFD, "\xC2\xBC", "\xC2\xBC"},
		{"compat expanded by nfkd", NFKD, "\xC2\xBC", "1\xE2\x81\x844"},
		{"compat closure", NFKD, "\xC7\x84", "DZ\xCC\x8C"},
		{"sharp s untouched", NFD, "\xC3\x9F", "\xC3\x9F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Bytes([]byte(tt.src))
			if string(got) != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, string(got))
			}
		})
	}
}

func TestTransform_Compose(t *testing.T) {
	tests := []struct {
		name string
		form Form
		src  string
		want string
	}{
		{"base and grave", NFC, "A\xCC\x80", "\xC3\x80"},
		{"precomposed passthrough", NFC, "\xC3\x80", "\xC3\x80"},
		{"diaeresis", NFC, "Bjo\xCC\x88rn", "Bj\xC3\xB6rn"},
		{"cedilla", NFC, "C\xCC\xA7", "\xC3\x87"},
		{"lower class does not block", NFC, "A\xCC\xA7\xCC\x80", "\xC3\x80\xCC\xA7"},
		{"blocked by equal class", NFC, "a\xCC\xA7\xCC\xA8", "a\xCC\xA7\xCC\xA8"},
		{"mark reordered then composed", NFC, "A\xCC\x80\xCC\xA7", "\xC3\x80\xCC\xA7"},
		{"compat digraph recomposes its caron", NFKC, "\xC7\x85", "D\xC5\xBE"},
		{"fraction by nfkc", NFKC, "\xC2\xBD", "1\xE2\x81\x842"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Bytes([]byte(tt.src))
			if string(got) != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, string(got))
			}
		})
	}
}

func TestTransform_CCCReorder(t *testing.T) {
	// 0327 (class 202) must move before 0308 (class 230); equal classes
	// keep their input order.
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"lower class moves first", "A\xCC\x88\xCC\xA7", "A\xCC\xA7\xCC\x88"},
		{"equal classes stay stable", "A\xCC\x88\xCC\x80", "A\xCC\x88\xCC\x80"},
		{"sorted run unchanged", "A\xCC\xA7\xCC\x88", "A\xCC\xA7\xCC\x88"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NFD.Bytes([]byte(tt.src))
			if string(got) != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, string(got))
			}
		})
	}
}

func TestTransform_Hangul(t *testing.T) {
	tests := []struct {
		name string
		form Form
		src  string
		want string
	}{
		// 0xAC00 = L 1100 + V 1161
		{"first syllable decomposes", NFD, "\xEA\xB0\x80", "\xE1\x84\x80\xE1\x85\xA1"},
		// 0xD7A3 = L 1112 + V 1175 + T 11C2
		{"last syllable decomposes", NFD, "\xED\x9E\xA3", "\xE1\x84\x92\xE1\x85\xB5\xE1\x87\x82"},
		// 0xAC01 = LV 0xAC00 + T 11A8
		{"lvt in the middle", NFD, "\xEA\xB0\x81", "\xE1\x84\x80\xE1\x85\xA1\xE1\x86\xA8"},
		{"lv composes", NFC, "\xE1\x84\x80\xE1\x85\xA1", "\xEA\xB0\x80"},
		{"lvt composes", NFC, "\xE1\x84\x80\xE1\x85\xA1\xE1\x86\xA8", "\xEA\xB0\x81"},
		{"syllable round trip", NFC, "\xED\x9E\xA3", "\xED\x9E\xA3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Bytes([]byte(tt.src))
			if string(got) != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, string(got))
			}
		})
	}
}

func TestTransform_MalformedInput(t *testing.T) {
	// Transforms substitute U+FFFD and continue; one replacement per
	// malformed byte.
	got := NFD.Bytes([]byte("a\x80\xC3\x80"))
	want := "a\xEF\xBF\xBDA\xCC\x80"
	if string(got) != want {
		t.Fatalf("want: %#v, got: %#v", want, string(got))
	}
}

func TestTransform_NotEnoughSpace(t *testing.T) {
	dst := make([]byte, 6)
	n, err := NFD.Transform(dst, []byte("Am\xC3\x87zing"))
	if !errors.Is(err, codepoint.ErrNotEnoughSpace) {
		t.Fatalf("want ErrNotEnoughSpace, got: %v", err)
	}
	if n != 6 {
		t.Fatalf("unexpected size: want: 6, got: %v", n)
	}
	if string(dst[:n]) != "AmC\xCC\xA7z" {
		t.Fatalf("unexpected bytes: %#v", string(dst[:n]))
	}
}

func TestTransform_Measuring(t *testing.T) {
	srcs := []string{
		"Bj\xC3\xB6rn Zonderland",
		"\xC3\x80",
		"A\xCC\x80\xCC\xA7",
		"\xEA\xB0\x81",
		"\xC2\xBC",
	}
	for _, src := range srcs {
		for _, form := range []Form{NFC, NFD, NFKC, NFKD} {
			t.Run(fmt.Sprintf("%v/%#v", form, src), func(t *testing.T) {
				size, err := form.Transform(nil, []byte(src))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				big := make([]byte, 256)
				n, err := form.Transform(big, []byte(src))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if size != n {
					t.Fatalf("measuring mode disagrees: want: %v, got: %v", n, size)
				}
			})
		}
	}
}

func TestTransform_Idempotence(t *testing.T) {
	srcs := []string{
		"Bj\xC3\xB6rn Zonderland",
		"A\xCC\x88\xCC\xA7x",
		"\xEA\xB0\x81\xE1\x84\x80\xE1\x85\xA1",
		"\xC7\x85\xC2\xBC",
	}
	for _, src := range srcs {
		for _, form := range []Form{NFC, NFD, NFKC, NFKD} {
			once := form.Bytes([]byte(src))
			twice := form.Bytes(once)
			if string(once) != string(twice) {
				t.Fatalf("%v of %#v is not idempotent: %#v vs %#v", form, src, string(once), string(twice))
			}
		}
	}
}

func TestTransform_DecomposeComposeInversion(t *testing.T) {
	srcs := []string{
		"Bj\xC3\xB6rn",
		"\xC3\x80\xC3\x87",
		"\xEA\xB0\x81",
	}
	for _, src := range srcs {
		nfd := NFD.Bytes([]byte(src))
		nfc := NFC.Bytes(nfd)
		direct := NFC.Bytes([]byte(src))
		if string(nfc) != string(direct) {
			t.Fatalf("NFC(NFD(%#v)) = %#v, want %#v", src, string(nfc), string(direct))
		}
	}
}

func TestParseForm(t *testing.T) {
	for _, name := range []string{"nfc", "NFC", "nfd", "NFD", "nfkc", "NFKC", "nfkd", "NFKD"} {
		if _, ok := ParseForm(name); !ok {
			t.Fatalf("ParseForm(%q) failed", name)
		}
	}
	if _, ok := ParseForm("nfx"); ok {
		t.Fatalf("ParseForm accepted an unknown form")
	}
}

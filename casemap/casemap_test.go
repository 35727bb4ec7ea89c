package casemap

import (
	"errors"
	"testing"

	"github.com/tkelman/utf8rewind/codepoint"
)

type caseOp func(Locale, []byte, []byte) (int, error)

func upperOp(l Locale, dst, src []byte) (int, error) { return l.ToUpper(dst, src) }
func lowerOp(l Locale, dst, src []byte) (int, error) { return l.ToLower(dst, src) }
func titleOp(l Locale, dst, src []byte) (int, error) { return l.ToTitle(dst, src) }
func foldOp(l Locale, dst, src []byte) (int, error)  { return l.Fold(dst, src) }

func runOp(t *testing.T, op caseOp, l Locale, src string) string {
	t.Helper()
	dst := make([]byte, 256)
	n, err := op(l, dst, []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(dst[:n])
}

func TestToUpper(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"ascii", "Hello World!", "HELLO WORLD!"},
		{"latin-1", "bj\xC3\xB6rn", "BJ\xC3\x96RN"},
		{"sharp s expands", "stra\xC3\x9Fe", "STRASSE"},
		{"y with diaeresis", "\xC3\xBF", "\xC5\xB8"},
		{"micro sign", "\xC2\xB5", "\xCE\x9C"},
		{"greek", "\xCF\x83\xCE\xB1", "\xCE\xA3\xCE\x91"},
		{"marks pass through", "e\xCC\x81", "E\xCC\x81"},
		{"out-of-order marks keep their order", "e\xCC\x81\xCC\xA7", "E\xCC\x81\xCC\xA7"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runOp(t, upperOp, Root, tt.src); got != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, got)
			}
		})
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"ascii", "Hello World!", "hello world!"},
		{"latin-1", "BJ\xC3\x96RN", "bj\xC3\xB6rn"},
		{"dotted capital i", "\xC4\xB0", "i\xCC\x87"},
		{"final sigma", "\xCE\xA3\xCE\x91\xCE\xA3", "\xCF\x83\xCE\xB1\xCF\x82"},
		{"sigma before letter", "\xCE\xA3\xCE\x91", "\xCF\x83\xCE\xB1"},
		{"lone sigma", "\xCE\xA3", "\xCF\x83"},
		{"final sigma ignores apostrophe", "\xCE\xA3\xCE\x91\xCE\xA3'", "\xCF\x83\xCE\xB1\xCF\x82'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runOp(t, lowerOp, Root, tt.src); got != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, got)
			}
		})
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"words", "hello WORLD", "Hello World"},
		{"apostrophe does not split", "don't", "Don't"},
		{"digits reset", "3rd place4you", "3Rd Place4You"},
		{"digraph", "\xC7\x86eljko", "\xC7\x85eljko"},
		{"latin-1", "\xC3\xA0 la carte", "\xC3\x80 La Carte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runOp(t, titleOp, Root, tt.src); got != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, got)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"ascii", "Hello", "hello"},
		{"sharp s", "stra\xC3\x9Fe", "strasse"},
		{"final sigma folds to sigma", "\xCE\xA3\xCF\x82\xCF\x83", "\xCF\x83\xCF\x83\xCF\x83"},
		{"dotted capital i", "\xC4\xB0", "i\xCC\x87"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runOp(t, foldOp, Root, tt.src); got != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, got)
			}
		})
	}
}

func TestTurkish(t *testing.T) {
	tests := []struct {
		name string
		op   caseOp
		src  string
		want string
	}{
		{"upper i", upperOp, "i", "\xC4\xB0"},
		{"upper i with combining dot", upperOp, "i\xCC\x87", "I"},
		{"lower I", lowerOp, "I", "\xC4\xB1"},
		{"lower I with combining dot", lowerOp, "I\xCC\x87", "i"},
		{"lower dotted I", lowerOp, "\xC4\xB0", "i"},
		{"word", upperOp, "istanbul", "\xC4\xB0STANBUL"},
		{"title word", titleOp, "istanbul", "\xC4\xB0stanbul"},
		{"fold I", foldOp, "I", "\xC4\xB1"},
		{"fold dotted I", foldOp, "\xC4\xB0", "i"},
		{"only i is tailored", upperOp, "taksim", "TAKS\xC4\xB0M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, l := range []Locale{Turkish, Azeri} {
				if got := runOp(t, tt.op, l, tt.src); got != tt.want {
					t.Fatalf("%v: want: %#v, got: %#v", l, tt.want, got)
				}
			}
		})
	}
}

func TestLithuanian(t *testing.T) {
	tests := []struct {
		name string
		op   caseOp
		src  string
		want string
	}{
		// The combining dot above is absorbed; the grave survives.
		{"upper absorbs soft dot", upperOp, "i\xCC\x87\xCC\x80", "I\xCC\x80"},
		{"upper j absorbs soft dot", upperOp, "j\xCC\x87\xCC\x81", "J\xCC\x81"},
		{"upper without dot", upperOp, "i\xCC\x80", "I\xCC\x80"},
		// The soft-dotted rewrite leaves its run CCC-sorted: input
		// classes 222, 220, 230 come out as 220, 222, 230.
		{"upper sorts soft-dotted run", upperOp, "i\xE1\xA4\xB9\xCD\x8E\xDD\x87", "I\xCD\x8E\xE1\xA4\xB9\xDD\x87"},
		// Capital I is not soft dotted, so no rule rewrites the run and
		// the marks pass through unchanged, even out of CCC order.
		{"upper capital I keeps mark order", upperOp, "I\xE1\xA4\xB9\xCD\x8E\xDD\x87", "I\xE1\xA4\xB9\xCD\x8E\xDD\x87"},
		// Lowercasing I/J/Į before a mark above inserts the soft dot.
		{"lower inserts soft dot", lowerOp, "I\xCC\x80", "i\xCC\x87\xCC\x80"},
		{"lower j inserts soft dot", lowerOp, "J\xCC\x83", "j\xCC\x87\xCC\x83"},
		{"lower ogonek inserts soft dot", lowerOp, "\xC4\xAE\xCC\x80", "\xC4\xAF\xCC\x87\xCC\x80"},
		{"lower without mark above", lowerOp, "I", "i"},
		{"lower below mark only", lowerOp, "I\xCC\x96", "i\xCC\x96"},
		// Precomposed accented I lowers to the decomposed dotted form.
		{"lower i grave", lowerOp, "\xC3\x8C", "i\xCC\x87\xCC\x80"},
		{"lower i acute", lowerOp, "\xC3\x8D", "i\xCC\x87\xCC\x81"},
		{"lower i tilde", lowerOp, "\xC4\xA8", "i\xCC\x87\xCC\x83"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runOp(t, tt.op, Lithuanian, tt.src); got != tt.want {
				t.Fatalf("want: %#v, got: %#v", tt.want, got)
			}
		})
	}
}

func TestTransform_MalformedInput(t *testing.T) {
	got := runOp(t, upperOp, Root, "a\x80b")
	if got != "A\xEF\xBF\xBDB" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestTransform_NotEnoughSpace(t *testing.T) {
	dst := make([]byte, 4)
	n, err := Root.ToUpper(dst, []byte("stra\xC3\x9Fe"))
	if !errors.Is(err, codepoint.ErrNotEnoughSpace) {
		t.Fatalf("want ErrNotEnoughSpace, got: %v", err)
	}
	if string(dst[:n]) != "STRA" {
		t.Fatalf("unexpected partial output: %#v", string(dst[:n]))
	}
}

func TestTransform_Measuring(t *testing.T) {
	srcs := []string{"stra\xC3\x9Fe", "i\xCC\x87\xCC\x80", "\xCE\xA3\xCE\x91\xCE\xA3"}
	locales := []Locale{Root, Turkish, Lithuanian}
	ops := []caseOp{upperOp, lowerOp, titleOp, foldOp}
	for _, src := range srcs {
		for _, l := range locales {
			for _, op := range ops {
				size, err := op(l, nil, []byte(src))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				big := make([]byte, 256)
				n, err := op(l, big, []byte(src))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if size != n {
					t.Fatalf("measuring mode disagrees for %#v: want: %v, got: %v", src, n, size)
				}
			}
		}
	}
}

func TestDefaultLocale(t *testing.T) {
	defer SetDefault(Root)

	SetDefault(Turkish)
	if Default() != Turkish {
		t.Fatalf("unexpected default locale: %v", Default())
	}
	dst := make([]byte, 16)
	n, err := ToUpper(dst, []byte("i"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(dst[:n]) != "\xC4\xB0" {
		t.Fatalf("default locale not applied: %#v", string(dst[:n]))
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want Locale
	}{
		{"tr", Turkish},
		{"tr-TR", Turkish},
		{"TR_tr", Turkish},
		{"az", Azeri},
		{"az-Latn-AZ", Azeri},
		{"lt", Lithuanian},
		{"lt_LT", Lithuanian},
		{"en", Root},
		{"", Root},
		{"tran", Root},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseLocale(tt.tag); got != tt.want {
				t.Fatalf("want: %v, got: %v", tt.want, got)
			}
		})
	}
}

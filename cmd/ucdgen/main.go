// ucdgen materializes the property tables in property/tables.go from the
// Unicode Character Database. It downloads the data files, derives the
// decomposition closures, composition pairs, quick-check values and case
// mappings, compresses everything into two-stage page tables and renders
// the result as Go source.
package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/tkelman/utf8rewind/pagetable"
	"github.com/tkelman/utf8rewind/ucd"
)

const ucdBaseURL = "https://www.unicode.org/Public/13.0.0/ucd/"

func main() {
	err := gen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func fetch[T any](name string, parse func(r *http.Response) (T, error)) (T, error) {
	var zero T
	resp, err := http.Get(ucdBaseURL + name)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("fetching %v: %v", name, resp.Status)
	}
	v, err := parse(resp)
	if err != nil {
		return zero, fmt.Errorf("parsing %v: %w", name, err)
	}
	return v, nil
}

func gen() error {
	data, err := fetch("UnicodeData.txt", func(r *http.Response) (*ucd.UnicodeData, error) {
		return ucd.ParseUnicodeData(r.Body)
	})
	if err != nil {
		return err
	}
	props, err := fetch("DerivedNormalizationProps.txt", func(r *http.Response) (*ucd.DerivedNormalizationProps, error) {
		return ucd.ParseDerivedNormalizationProps(r.Body)
	})
	if err != nil {
		return err
	}
	folding, err := fetch("CaseFolding.txt", func(r *http.Response) (*ucd.CaseFolding, error) {
		return ucd.ParseCaseFolding(r.Body)
	})
	if err != nil {
		return err
	}
	casing, err := fetch("SpecialCasing.txt", func(r *http.Response) (*ucd.SpecialCasing, error) {
		return ucd.ParseSpecialCasing(r.Body)
	})
	if err != nil {
		return err
	}

	g := &generator{
		data:    data,
		props:   props,
		folding: folding,
		casing:  casing,
	}
	src, err := g.render()
	if err != nil {
		return err
	}
	// go:generate runs this from the property package directory.
	return os.WriteFile("tables.go", []byte(src), 0644)
}

type generator struct {
	data    *ucd.UnicodeData
	props   *ucd.DerivedNormalizationProps
	folding *ucd.CaseFolding
	casing  *ucd.SpecialCasing
}

// closure expands a single-level decomposition to its fixed point, so the
// runtime needs one lookup only.
func (g *generator) closure(cp rune, compat bool) []rune {
	rec := g.data.Records[cp]
	if rec == nil || rec.Decomposition == nil || (rec.DecompositionCompat && !compat) {
		return nil
	}
	var out []rune
	for _, d := range rec.Decomposition {
		if sub := g.closure(d, compat); sub != nil {
			out = append(out, sub...)
		} else {
			out = append(out, d)
		}
	}
	return out
}

func (g *generator) ccc(cp rune) uint8 {
	if rec := g.data.Records[cp]; rec != nil {
		return rec.CanonicalCombiningClass
	}
	return 0
}

// pool interns code-point sequences: each unique sequence is stored once
// as a length-prefixed run. Offset 0 is reserved for "no mapping".
type pool struct {
	runes    []rune
	interned map[string]uint16
}

func newPool() *pool {
	return &pool{
		runes:    []rune{0},
		interned: map[string]uint16{},
	}
}

func (p *pool) intern(seq []rune) uint16 {
	key := string(seq)
	if off, ok := p.interned[key]; ok {
		return off
	}
	off := uint16(len(p.runes))
	p.runes = append(p.runes, rune(len(seq)))
	p.runes = append(p.runes, seq...)
	p.interned[key] = off
	return off
}

func (g *generator) render() (string, error) {
	var b strings.Builder

	// Canonical combining classes.
	cccBuilder := pagetable.NewBuilder[uint8](0)
	for cp, rec := range g.data.Records {
		if rec.CanonicalCombiningClass != 0 {
			if err := cccBuilder.Set(cp, rec.CanonicalCombiningClass); err != nil {
				return "", err
			}
		}
	}
	emitTable(&b, "ccc", "uint8", cccBuilder)

	// Quick check, two bits per form.
	qcBuilder := pagetable.NewBuilder[uint8](0)
	qcValues := map[rune]uint8{}
	for i, prop := range []string{"NFC_QC", "NFD_QC", "NFKC_QC", "NFKD_QC"} {
		for cp, val := range g.props.QuickCheck[prop] {
			qcValues[cp] |= uint8(val) << (2 * uint(i))
		}
	}
	for cp, v := range qcValues {
		if err := qcBuilder.Set(cp, v); err != nil {
			return "", err
		}
	}
	emitTable(&b, "qc", "uint8", qcBuilder)

	// Decomposition mappings, canonical and compatibility closures.
	decompPool := newPool()
	canonicalBuilder := pagetable.NewBuilder[uint16](0)
	compatBuilder := pagetable.NewBuilder[uint16](0)
	for _, cp := range sortedCodePoints(g.data.Records) {
		canonical := g.closure(cp, false)
		if canonical != nil {
			if err := canonicalBuilder.Set(cp, decompPool.intern(canonical)); err != nil {
				return "", err
			}
		}
		// A canonical mapping can reach a compatibility mapping further
		// down (U+1E9B via U+017F), so the compatibility closure is stored
		// whenever it differs from the canonical one.
		if seq := g.closure(cp, true); seq != nil && string(seq) != string(canonical) {
			if err := compatBuilder.Set(cp, decompPool.intern(seq)); err != nil {
				return "", err
			}
		}
	}
	emitTable(&b, "canonical", "uint16", canonicalBuilder)
	emitTable(&b, "compat", "uint16", compatBuilder)
	emitRunes(&b, "decompPool", decompPool.runes)

	// Composition pairs: primary composites only, per UAX #15. Hangul is
	// algorithmic and never listed.
	type pair struct {
		key uint64
		cp  rune
	}
	var pairs []pair
	for _, cp := range sortedCodePoints(g.data.Records) {
		rec := g.data.Records[cp]
		if len(rec.Decomposition) != 2 || rec.DecompositionCompat {
			continue
		}
		if rec.CanonicalCombiningClass != 0 {
			continue
		}
		if g.ccc(rec.Decomposition[0]) != 0 {
			continue
		}
		if g.props.FullCompositionExclusion[cp] {
			continue
		}
		key := uint64(rec.Decomposition[0])<<21 | uint64(rec.Decomposition[1])
		pairs = append(pairs, pair{key: key, cp: cp})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	keys := make([]uint64, len(pairs))
	composites := make([]rune, len(pairs))
	for i, p := range pairs {
		keys[i] = p.key
		composites[i] = p.cp
	}
	emitUint64s(&b, "compositionKeys", keys)
	emitRunes(&b, "compositionValues", composites)

	// Case mappings. The tables carry unconditional mappings only: simple
	// mappings from UnicodeData.txt, overridden by unconditional full
	// mappings from SpecialCasing.txt. Conditional and locale-tailored
	// entries stay out; the case mapper evaluates those as rules.
	casePool := newPool()
	upper := map[rune][]rune{}
	lower := map[rune][]rune{}
	title := map[rune][]rune{}
	fold := map[rune][]rune{}
	for cp, rec := range g.data.Records {
		if rec.SimpleUppercase != 0 {
			upper[cp] = []rune{rec.SimpleUppercase}
			title[cp] = []rune{rec.SimpleUppercase}
		}
		if rec.SimpleLowercase != 0 {
			lower[cp] = []rune{rec.SimpleLowercase}
		}
		if rec.SimpleTitlecase != 0 {
			title[cp] = []rune{rec.SimpleTitlecase}
		}
	}
	for _, entry := range g.casing.Entries {
		if !entry.Unconditional() {
			continue
		}
		setFull := func(m map[rune][]rune, seq []rune) {
			if len(seq) == 1 && seq[0] == entry.CodePoint {
				delete(m, entry.CodePoint)
				return
			}
			m[entry.CodePoint] = seq
		}
		setFull(upper, entry.Upper)
		setFull(lower, entry.Lower)
		setFull(title, entry.Title)
	}
	for cp, seq := range g.folding.Full {
		if len(seq) == 1 && seq[0] == cp {
			continue
		}
		fold[cp] = seq
	}

	for _, kind := range []struct {
		name string
		m    map[rune][]rune
	}{
		{"upper", upper},
		{"lower", lower},
		{"title", title},
		{"fold", fold},
	} {
		builder := pagetable.NewBuilder[uint16](0)
		for _, cp := range sortedKeys(kind.m) {
			if err := builder.Set(cp, casePool.intern(kind.m[cp])); err != nil {
				return "", err
			}
		}
		emitTable(&b, kind.name, "uint16", builder)
	}
	emitRunes(&b, "casePool", casePool.runes)

	// Coarse general category plus the case-context flags.
	const (
		catLetter     = 1
		catMark       = 2
		catNumber     = 3
		catCased      = 1 << 2
		catIgnorable  = 1 << 3
		catSoftDotted = 1 << 4
	)
	catValue := func(gc string) uint8 {
		switch {
		case strings.HasPrefix(gc, "L"):
			v := uint8(catLetter)
			if gc == "Lu" || gc == "Ll" || gc == "Lt" {
				v |= catCased
			}
			if gc == "Lm" {
				v |= catIgnorable
			}
			return v
		case strings.HasPrefix(gc, "M"):
			return catMark | catIgnorable
		case strings.HasPrefix(gc, "N"):
			return catNumber
		case gc == "Cf":
			return catIgnorable
		}
		return 0
	}
	catBuilder := pagetable.NewBuilder[uint8](0)
	for cp, rec := range g.data.Records {
		if v := catValue(rec.GeneralCategory); v != 0 {
			if err := catBuilder.Set(cp, v); err != nil {
				return "", err
			}
		}
	}
	for _, rr := range g.data.Ranges {
		if v := catValue(rr.GeneralCategory); v != 0 {
			if err := catBuilder.SetRange(rr.Range.From, rr.Range.To, v); err != nil {
				return "", err
			}
		}
	}
	// Soft_Dotted comes from PropList.txt; the case mapper only needs the
	// Lithuanian set, kept inline here to avoid another download.
	for _, cp := range []rune{0x0069, 0x006A, 0x012F, 0x0268, 0x0456, 0x0458, 0x1E2D, 0x1ECB} {
		rec := g.data.Records[cp]
		v := catValue(rec.GeneralCategory) | catSoftDotted
		if err := catBuilder.Set(cp, v); err != nil {
			return "", err
		}
	}
	// The apostrophe is punctuation by general category but case-ignorable
	// (Word_Break Single_Quote); title casing and final sigma rely on it.
	if err := catBuilder.Set(0x0027, catIgnorable); err != nil {
		return "", err
	}
	emitTable(&b, "category", "uint8", catBuilder)

	return renderFile(b.String())
}

func sortedCodePoints(records map[rune]*ucd.Record) []rune {
	cps := make([]rune, 0, len(records))
	for cp := range records {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	return cps
}

func sortedKeys(m map[rune][]rune) []rune {
	cps := make([]rune, 0, len(m))
	for cp := range m {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	return cps
}

// emitTable renders one two-stage table as a sparse keyed index literal
// and keyed page literals. Page 0, the shared default page, is omitted
// from the source; the zero value of the page array supplies it.
func emitTable[V interface{ uint8 | uint16 }](b *strings.Builder, name, typ string, builder *pagetable.Builder[V]) {
	index, pages := builder.Build()

	fmt.Fprintf(b, "var %vIndex = [pagetable.IndexSize]uint16{", name)
	first := true
	for n, page := range index {
		if page == 0 {
			continue
		}
		if !first {
			fmt.Fprint(b, ", ")
		}
		first = false
		fmt.Fprintf(b, "%#x: %d", n, page)
	}
	fmt.Fprint(b, "}\n\n")

	fmt.Fprintf(b, "var %vPages = [...][pagetable.PageSize]%v{\n", name, typ)
	for n, page := range pages {
		if n == 0 {
			continue
		}
		fmt.Fprintf(b, "\t%d: {", n)
		col := 0
		for off, v := range page {
			if v == 0 {
				continue
			}
			if col%8 == 0 {
				fmt.Fprint(b, "\n\t\t")
			}
			fmt.Fprintf(b, "%#x: %#x, ", off, v)
			col++
		}
		fmt.Fprint(b, "\n\t},\n")
	}
	fmt.Fprint(b, "}\n\n")
}

func emitRunes(b *strings.Builder, name string, values []rune) {
	fmt.Fprintf(b, "var %v = [...]rune{", name)
	for i, v := range values {
		if i%8 == 0 {
			fmt.Fprint(b, "\n\t")
		}
		fmt.Fprintf(b, "%#x,", v)
	}
	fmt.Fprint(b, "\n}\n\n")
}

func emitUint64s(b *strings.Builder, name string, values []uint64) {
	fmt.Fprintf(b, "var %v = [...]uint64{", name)
	for i, v := range values {
		if i%4 == 0 {
			fmt.Fprint(b, "\n\t")
		}
		fmt.Fprintf(b, "%#x,", v)
	}
	fmt.Fprint(b, "\n}\n\n")
}

var fileTemplate = template.Must(template.New("tables").Parse(`// Code generated by ucdgen; DO NOT EDIT.
// Unicode Character Database 13.0.0

package property

import "github.com/tkelman/utf8rewind/pagetable"

{{.Body}}`))

func renderFile(body string) (string, error) {
	var b strings.Builder
	err := fileTemplate.Execute(&b, struct {
		Body string
	}{
		Body: body,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc holds source text together with an index of newline offsets, from
// which line/column pairs are derived on demand.
type Doc struct {
	d []byte
	n []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

func (d *Doc) Bytes() []byte {
	return d.d
}

// LineCol returns the 1-based line and column of a byte offset.
func (d *Doc) LineCol(off int) (int, int) {
	N := len(d.n)
	di := sort.Search(N, func(i int) bool {
		return d.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - d.n[di-1]
}

// Span returns the half-open range [start, end) of d.
func (d *Doc) Span(start, end int) Span {
	return Span{Start: start, End: end, D: d}
}

func (d *Doc) end() Span {
	return Span{Start: len(d.d), End: len(d.d), D: d}
}

// Span is a half-open byte range [Start, End) over a source document.
// The zero Span has no document and reports line and column 0.
type Span struct {
	Start, End int
	D          *Doc
}

func (s Span) LineCol() (int, int) {
	if s.D == nil {
		return 0, 0
	}
	return s.D.LineCol(s.Start)
}

func (s Span) Line() int {
	l, _ := s.LineCol()
	return l
}

func (s Span) Col() int {
	_, c := s.LineCol()
	return c
}

func (s Span) IsZero() bool {
	return s.D == nil && s.Start == 0 && s.End == 0
}

// To returns the span from the start of s to the end of o.
func (s Span) To(o Span) Span {
	return Span{Start: s.Start, End: o.End, D: s.D}
}

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Text returns the source text the span covers.
func (s Span) Text() string {
	if s.D == nil {
		return ""
	}
	return string(s.D.d[s.Start:s.End])
}

func (s Span) String() string {
	if s.D == nil {
		return fmt.Sprintf("offset %d", s.Start)
	}
	sample := string(s.D.d[max(0, s.Start-5):min(s.Start+5, len(s.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := s.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, s.Start, l, c)
}

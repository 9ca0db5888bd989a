package scripture

import (
	"fmt"
	"strings"
)

// CanonicalRange is a validated scripture reference. A zero StartVerse and
// EndVerse means the range covers whole chapters.
type CanonicalRange struct {
	Book         BookID `json:"book"`
	StartChapter int    `json:"start_chapter"`
	StartVerse   int    `json:"start_verse,omitzero"`
	EndChapter   int    `json:"end_chapter"`
	EndVerse     int    `json:"end_verse,omitzero"`
}

// IsWholeChapters reports whether the range carries no verse bounds.
func (r CanonicalRange) IsWholeChapters() bool {
	return r.StartVerse == 0 && r.EndVerse == 0
}

// Format renders the canonical spelling of a range: the canonical book name,
// "ch" or "ch:vs", and a "-..." suffix only when the range spans more than a
// single point. Format(Parse(s)) is stable for every s Parse accepts.
func Format(r CanonicalRange) string {
	b, ok := booksByID[r.Book]
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteString(fmt.Sprintf(" %d", r.StartChapter))

	if r.IsWholeChapters() {
		if r.EndChapter != r.StartChapter {
			sb.WriteString(fmt.Sprintf("-%d", r.EndChapter))
		}
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf(":%d", r.StartVerse))

	switch {
	case r.EndChapter != r.StartChapter:
		sb.WriteString(fmt.Sprintf("-%d:%d", r.EndChapter, r.EndVerse))
	case r.EndVerse != r.StartVerse:
		sb.WriteString(fmt.Sprintf("-%d", r.EndVerse))
	}

	return sb.String()
}

// Overlaps reports whether two ranges of the same book intersect. When either
// range carries no verse bounds the test runs at chapter granularity; when
// both carry verses it runs at (chapter, verse) granularity. Partial overlap
// counts.
func Overlaps(a, b CanonicalRange) bool {
	if a.Book != b.Book {
		return false
	}
	if a.StartChapter > b.EndChapter || b.StartChapter > a.EndChapter {
		return false
	}
	if a.IsWholeChapters() || b.IsWholeChapters() {
		return true
	}
	return !posBefore(a.EndChapter, a.EndVerse, b.StartChapter, b.StartVerse) &&
		!posBefore(b.EndChapter, b.EndVerse, a.StartChapter, a.StartVerse)
}

// posBefore reports whether position (c1, v1) comes strictly before (c2, v2).
func posBefore(c1, v1, c2, v2 int) bool {
	if c1 != c2 {
		return c1 < c2
	}
	return v1 < v2
}

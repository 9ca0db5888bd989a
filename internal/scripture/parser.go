package scripture

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// rawReference is the participle grammar for free-text citations:
// "<book> <chapter>[:<verse>][-<chapter2>][:<verse2>]".
type rawReference struct {
	Book       string `parser:"@Book"`
	Chapter    int    `parser:"@Number"`
	Verse      *int   `parser:"( ':' @Number )?"`
	EndChapter *int   `parser:"( '-' @Number"`
	EndVerse   *int   `parser:"  ( ':' @Number )? )?"`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Book names: optional numeric prefix, then letters, possibly several
	// words ("Song of Solomon", "1 Corinthians"), optional trailing period.
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[rawReference](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// Parse turns a free-text citation into a validated canonical range.
// It returns nil for anything malformed or out of bounds: unknown book,
// chapter outside 1..chapterCount, reversed chapter or verse order, or a
// verse bound on only one side of a cross-chapter dash. Malformed input is an
// expected case (user typos) and never produces an error or panic.
func Parse(text string) *CanonicalRange {
	raw, err := referenceParser.ParseString("", text)
	if err != nil {
		return nil
	}

	// "Romans 1:1-7" lexes with 7 in EndChapter; when the start has a verse
	// and the end has no colon, the trailing number is a verse, not a chapter.
	if raw.Verse != nil && raw.EndChapter != nil && raw.EndVerse == nil {
		raw.EndVerse = raw.EndChapter
		raw.EndChapter = nil
	}

	book, ok := ResolveBookID(raw.Book)
	if !ok {
		return nil
	}

	r := CanonicalRange{
		Book:         book,
		StartChapter: raw.Chapter,
		EndChapter:   raw.Chapter,
	}
	if raw.Verse != nil {
		r.StartVerse = *raw.Verse
		r.EndVerse = *raw.Verse
	}
	if raw.EndChapter != nil {
		r.EndChapter = *raw.EndChapter
	}
	if raw.EndVerse != nil {
		r.EndVerse = *raw.EndVerse
	}

	// Verse bounds come in pairs: "Genesis 1-2:3" names no start verse for a
	// verse-bounded end and is rejected rather than guessed at.
	if (r.StartVerse == 0) != (r.EndVerse == 0) {
		return nil
	}

	if !valid(r) {
		return nil
	}
	return &r
}

func valid(r CanonicalRange) bool {
	max := ChapterCount(r.Book)
	if r.StartChapter < 1 || r.EndChapter < 1 || r.StartChapter > max || r.EndChapter > max {
		return false
	}
	if r.StartChapter > r.EndChapter {
		return false
	}
	if !r.IsWholeChapters() {
		if r.StartVerse < 1 || r.EndVerse < 1 {
			return false
		}
		if r.StartChapter == r.EndChapter && r.StartVerse > r.EndVerse {
			return false
		}
	}
	return true
}

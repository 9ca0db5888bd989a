package scripture

import "testing"

func TestParseSingleVerse(t *testing.T) {
	r := Parse("Romans 1:1")
	if r == nil {
		t.Fatal("Parse returned nil for a valid reference")
	}

	want := CanonicalRange{Book: "ROM", StartChapter: 1, StartVerse: 1, EndChapter: 1, EndVerse: 1}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}
}

func TestParseWholeChapter(t *testing.T) {
	r := Parse("Romans 1")
	if r == nil {
		t.Fatal("Parse returned nil for a valid reference")
	}

	want := CanonicalRange{Book: "ROM", StartChapter: 1, EndChapter: 1}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}
	if !r.IsWholeChapters() {
		t.Error("expected whole-chapter range")
	}
}

func TestParseVerseRange(t *testing.T) {
	r := Parse("Romans 8:28-30")
	if r == nil {
		t.Fatal("Parse returned nil for a valid reference")
	}

	want := CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 28, EndChapter: 8, EndVerse: 30}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}
}

func TestParseCrossChapterRange(t *testing.T) {
	r := Parse("Genesis 1:1-2:3")
	if r == nil {
		t.Fatal("Parse returned nil for a valid reference")
	}

	want := CanonicalRange{Book: "GEN", StartChapter: 1, StartVerse: 1, EndChapter: 2, EndVerse: 3}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}
}

func TestParseChapterRange(t *testing.T) {
	r := Parse("Genesis 1-3")
	if r == nil {
		t.Fatal("Parse returned nil for a valid reference")
	}

	want := CanonicalRange{Book: "GEN", StartChapter: 1, EndChapter: 3}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}
}

func TestParseAbbreviations(t *testing.T) {
	tests := []struct {
		input string
		book  BookID
	}{
		{"Rom 8", "ROM"},
		{"rom 8", "ROM"},
		{"ROMANS 8", "ROM"},
		{"1 Corinthians 13", "1CO"},
		{"1Corinthians 13", "1CO"},
		{"1Co 13", "1CO"},
		{"1 Cor 13", "1CO"},
		{"Song of Solomon 2", "SNG"},
		{"Ps 23", "PSA"},
		{"Gen. 1:1", "GEN"},
		{"  Romans   8  ", "ROM"},
	}

	for _, tt := range tests {
		r := Parse(tt.input)
		if r == nil {
			t.Errorf("Parse(%q) returned nil", tt.input)
			continue
		}
		if r.Book != tt.book {
			t.Errorf("Parse(%q) resolved book %q, want %q", tt.input, r.Book, tt.book)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"Hezekiah 3",          // unknown book
		"Romans",              // no chapter
		"Romans 0",            // chapter below range
		"Romans 17",           // Romans has 16 chapters
		"Jude 2",              // Jude has 1 chapter
		"Romans 8:30-28",      // reversed verses
		"Genesis 3-1",         // reversed chapters
		"Genesis 2:5-1:1",     // reversed chapters with verses
		"Genesis 1-2:3",       // verse bound on one side only
		"Romans 8:28-30 tail", // trailing garbage
		"8:28",                // no book
	}

	for _, input := range tests {
		if r := Parse(input); r != nil {
			t.Errorf("Parse(%q) = %+v, want nil", input, *r)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	inputs := []string{
		"Romans 1:1",
		"Rom 8:28-30",
		"Genesis 1:1-2:3",
		"gen 1-3",
		"1 cor 13",
		"Psalm 119:105",
	}

	for _, input := range inputs {
		first := Parse(input)
		if first == nil {
			t.Fatalf("Parse(%q) returned nil", input)
		}

		formatted := Format(*first)
		second := Parse(formatted)
		if second == nil {
			t.Fatalf("Parse(Format(Parse(%q))) = Parse(%q) returned nil", input, formatted)
		}
		if *second != *first {
			t.Errorf("round trip of %q changed the range: %+v -> %+v", input, *first, *second)
		}
	}
}

func TestFormatWholeChapterOmitsVerses(t *testing.T) {
	got := Format(CanonicalRange{Book: "ROM", StartChapter: 1, EndChapter: 1})
	if got != "Romans 1" {
		t.Errorf("got %q, want %q", got, "Romans 1")
	}

	got = Format(CanonicalRange{Book: "GEN", StartChapter: 1, EndChapter: 3})
	if got != "Genesis 1-3" {
		t.Errorf("got %q, want %q", got, "Genesis 1-3")
	}
}

func TestResolveBookID(t *testing.T) {
	if id, ok := ResolveBookID("revelation"); !ok || id != "REV" {
		t.Errorf("ResolveBookID(revelation) = %q, %t", id, ok)
	}
	if _, ok := ResolveBookID("Enoch"); ok {
		t.Error("expected Enoch to be unresolvable")
	}
}

func TestChapterCounts(t *testing.T) {
	if len(AllBooks) != 66 {
		t.Fatalf("expected 66 books, got %d", len(AllBooks))
	}
	if n := ChapterCount("PSA"); n != 150 {
		t.Errorf("Psalms chapter count = %d, want 150", n)
	}
	if n := ChapterCount("XXX"); n != 0 {
		t.Errorf("unknown book chapter count = %d, want 0", n)
	}
}

package links

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"shuvoedward/Theology_project/internal/data"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		token string
		want  Reference
	}{
		{"[[ST:Ch32]]", Reference{ChapterNumber: 32}},
		{"[[ST:Ch32:A]]", Reference{ChapterNumber: 32, SectionLetter: "A"}},
		{"[[ST:Ch32:a]]", Reference{ChapterNumber: 32, SectionLetter: "a"}}, // case preserved
		{"[[ST:Ch32:A.1]]", Reference{ChapterNumber: 32, SectionLetter: "A", SubsectionNumber: "1"}},
		{"[[ST:Ch7:B.12]]", Reference{ChapterNumber: 7, SectionLetter: "B", SubsectionNumber: "12"}},
	}

	for _, tt := range tests {
		got := ParseToken(tt.token)
		if got == nil {
			t.Errorf("ParseToken(%q) returned nil", tt.token)
			continue
		}
		if *got != tt.want {
			t.Errorf("ParseToken(%q) = %+v, want %+v", tt.token, *got, tt.want)
		}
	}
}

func TestParseTokenRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"[[ST:Ch]]",        // no digits
		"[[ST:Ch0]]",       // chapter below range
		"[[ST:Ch32:AB]]",   // two letters
		"[[ST:Ch32:A.]]",   // dot without digits
		"[[ST:Ch32:.1]]",   // subsection without section
		"[[ST:Ch32:A,1]]",  // wrong punctuation
		"[[st:ch32]]",      // wrong case on the prefix
		"[[ST:Ch32]] tail", // trailing text
		"[ST:Ch32]",        // single brackets
	}

	for _, token := range tests {
		if got := ParseToken(token); got != nil {
			t.Errorf("ParseToken(%q) = %+v, want nil", token, *got)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := []string{"[[ST:Ch32]]", "[[ST:Ch32:A]]", "[[ST:Ch32:A.1]]"}

	for _, token := range tokens {
		ref := ParseToken(token)
		if ref == nil {
			t.Fatalf("ParseToken(%q) returned nil", token)
		}
		if got := ref.Token(); got != token {
			t.Errorf("round trip changed token: %q -> %q", token, got)
		}
	}
}

func TestReplaceTokens(t *testing.T) {
	text := "Compare [[ST:Ch32:A]] with [[ST:Ch2]], but not [[ST:Ch32:AB]]."

	got := ReplaceTokens(text, func(ref Reference) string {
		return "{" + ref.Label() + "}"
	})

	want := "Compare {Ch. 32 A} with {Ch. 2}, but not [[ST:Ch32:AB]]."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPresent(t *testing.T) {
	ref := Reference{ChapterNumber: 32, SectionLetter: "A"}
	entry := &data.Entry{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("section:32:A")),
		Title: "Explanation and Scriptural Basis",
	}

	p := Present(ref, entry, "")
	if !p.Resolved || p.EntryID != entry.ID {
		t.Errorf("expected resolved presentation, got %+v", p)
	}
	if p.Display != entry.Title {
		t.Errorf("expected entry title as display text, got %q", p.Display)
	}

	p = Present(ref, entry, "see election")
	if p.Display != "see election" {
		t.Errorf("explicit display text must win, got %q", p.Display)
	}

	p = Present(ref, nil, "")
	if p.Resolved || p.Href != "" {
		t.Errorf("expected broken-link presentation, got %+v", p)
	}
	if p.Display != "Ch. 32 A" {
		t.Errorf("broken link must fall back to the label, got %q", p.Display)
	}
}

func TestRenderHTML(t *testing.T) {
	entry := &data.Entry{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("chapter:32")),
		Title: "Election and Reprobation",
	}

	content := "See [[ST:Ch32]] and [[ST:Ch99]] for more.\n\n## Heading\n\nBody."

	htmlOut, err := RenderHTML(content, func(ref Reference) *data.Entry {
		if ref.ChapterNumber == 32 {
			return entry
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(htmlOut, `<a href="/v1/theology/entries/`+entry.ID.String()+`">Election and Reprobation</a>`) {
		t.Errorf("resolved token not rendered as anchor:\n%s", htmlOut)
	}
	if !strings.Contains(htmlOut, "Ch. 99") {
		t.Errorf("dangling token must render as its label:\n%s", htmlOut)
	}
	if strings.Contains(htmlOut, "[[ST:") {
		t.Errorf("raw token leaked into the HTML:\n%s", htmlOut)
	}
	if !strings.Contains(htmlOut, "<h2") {
		t.Errorf("markdown heading not rendered:\n%s", htmlOut)
	}
}

package data

import (
	"testing"

	"github.com/google/uuid"
)

func testEntry(key, entryType, title string, sortOrder int, parent *Entry) *Entry {
	e := &Entry{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)),
		EntryType: entryType,
		Title:     title,
		SortOrder: sortOrder,
	}
	if parent != nil {
		e.ParentID = &parent.ID
	}
	return e
}

func TestBuildTreeNesting(t *testing.T) {
	part := testEntry("part:1", EntryTypePart, "The Doctrine of the Word of God", 0, nil)
	ch1 := testEntry("chapter:1", EntryTypeChapter, "Introduction", 1, part)
	ch2 := testEntry("chapter:2", EntryTypeChapter, "The Word of God", 2, part)
	secA := testEntry("section:2:A", EntryTypeSection, "Forms of the Word", 3, ch2)
	subA1 := testEntry("subsection:2:A.1", EntryTypeSubsection, "Decrees", 4, secA)

	// Shuffled input order; buildTree must not depend on it.
	roots := buildTree([]*Entry{subA1, ch2, part, secA, ch1})

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ID != part.ID {
		t.Fatalf("expected part at root, got %q", roots[0].Title)
	}

	chapters := roots[0].Children
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters under part, got %d", len(chapters))
	}
	if chapters[0].ID != ch1.ID || chapters[1].ID != ch2.ID {
		t.Error("chapters not in sort order")
	}

	sections := chapters[1].Children
	if len(sections) != 1 || sections[0].ID != secA.ID {
		t.Fatal("section missing under its chapter")
	}
	if len(sections[0].Children) != 1 || sections[0].Children[0].ID != subA1.ID {
		t.Fatal("subsection missing under its section")
	}
}

func TestBuildTreeSiblingTieBreak(t *testing.T) {
	b := testEntry("part:2", EntryTypePart, "B Part", 7, nil)
	a := testEntry("part:3", EntryTypePart, "A Part", 7, nil)

	roots := buildTree([]*Entry{b, a})
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Title != "A Part" {
		t.Errorf("equal sort_order must tie-break by title, got %q first", roots[0].Title)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	roots := buildTree(nil)
	if roots == nil || len(roots) != 0 {
		t.Errorf("expected empty non-nil forest, got %v", roots)
	}
}

func TestPaginateMatches(t *testing.T) {
	matches := make([]*DoctrineMatch, 7)
	for i := range matches {
		matches[i] = &DoctrineMatch{}
	}

	page, metadata, err := paginateMatches(matches, Filters{Page: 2, PageSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 2 {
		t.Errorf("expected 2 matches on the last page, got %d", len(page))
	}
	if metadata.TotalRecords != 7 || metadata.LastPage != 2 {
		t.Errorf("unexpected metadata %+v", metadata)
	}

	page, _, err = paginateMatches(matches, Filters{Page: 5, PageSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 0 {
		t.Errorf("expected an empty page beyond the result set, got %d", len(page))
	}
}

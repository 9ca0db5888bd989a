package data

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"shuvoedward/Theology_project/internal/scripture"
)

// seedCorpus commits a small two-chapter corpus and returns its entries by
// natural key. Cleaned up by the caller via cleanupCorpus.
func seedCorpus(t *testing.T) map[string]*Entry {
	t.Helper()

	part := testEntry("part:1", EntryTypePart, "The Doctrine of the Word of God", 0, nil)
	part.PartNumber = 1

	ch31 := testEntry("chapter:31", EntryTypeChapter, "Common Grace", 1, part)
	ch31.PartNumber = 1
	ch31.ChapterNumber = 31
	ch31.Content = "Chapter 31 introduction."

	ch32 := testEntry("chapter:32", EntryTypeChapter, "Election and Reprobation", 2, part)
	ch32.PartNumber = 1
	ch32.ChapterNumber = 32
	ch32.Content = "Chapter 32 introduction."

	secA := testEntry("section:32:A", EntryTypeSection, "Explanation and Scriptural Basis", 3, ch32)
	secA.PartNumber = 1
	secA.ChapterNumber = 32
	secA.SectionLetter = "A"
	secA.Content = "Section intro.\n\n### A.1 Definitions\n\nSubsection body."

	subA1 := testEntry("subsection:32:A.1", EntryTypeSubsection, "Definitions", 4, secA)
	subA1.PartNumber = 1
	subA1.ChapterNumber = 32
	subA1.SectionLetter = "A"
	subA1.SubsectionNumber = "1"
	subA1.Content = "Subsection body."

	entries := map[string]*Entry{
		"part": part, "ch31": ch31, "ch32": ch32, "secA": secA, "subA1": subA1,
	}

	plan := &ImportPlan{
		Entries: []*Entry{part, ch31, ch32, secA, subA1},
		Rows: map[uuid.UUID][]*ScriptureIndexRow{
			ch32.ID: {
				{
					ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("row:32:0")),
					EntryID:   ch32.ID,
					Range:     scripture.CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 28, EndChapter: 8, EndVerse: 30},
					IsPrimary: true,
				},
				{
					ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte("row:32:1")),
					EntryID: ch32.ID,
					Range:   scripture.CanonicalRange{Book: "EPH", StartChapter: 1, EndChapter: 1},
				},
			},
			secA.ID: {
				{
					ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte("row:32:A:0")),
					EntryID: secA.ID,
					Range:   scripture.CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 29, EndChapter: 8, EndVerse: 33},
				},
			},
		},
	}

	m := NewImportModel(testDB)
	if err := m.Commit(context.Background(), plan); err != nil {
		t.Fatalf("failed to seed corpus: %v", err)
	}

	return entries
}

func cleanupCorpus(t *testing.T) {
	t.Helper()
	// entries cascade to scripture_index rows
	if _, err := testDB.Exec(`DELETE FROM entries WHERE parent_id IS NULL`); err != nil {
		t.Errorf("cleanup failed: %v", err)
	}
}

func TestGetTree(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seeded := seedCorpus(t)
	defer cleanupCorpus(t)

	m := NewModels(testDB)
	roots, err := m.Entries.GetTree()
	if err != nil {
		t.Fatalf("GetTree() returned an error: %v", err)
	}

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ID != seeded["part"].ID {
		t.Errorf("unexpected root %q", roots[0].Title)
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(roots[0].Children))
	}
	if roots[0].Children[0].ChapterNumber != 31 {
		t.Errorf("chapters out of order: first is %d", roots[0].Children[0].ChapterNumber)
	}

	ch32 := roots[0].Children[1]
	if len(ch32.Children) != 1 || ch32.Children[0].SectionLetter != "A" {
		t.Fatal("section A missing under chapter 32")
	}
	if len(ch32.Children[0].Children) != 1 {
		t.Fatal("subsection A.1 missing under section A")
	}
}

func TestGetChapter(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seeded := seedCorpus(t)
	defer cleanupCorpus(t)

	m := NewModels(testDB)
	view, err := m.Entries.GetChapter(32)
	if err != nil {
		t.Fatalf("GetChapter(32) returned an error: %v", err)
	}

	if view.Chapter.ID != seeded["ch32"].ID {
		t.Errorf("unexpected chapter %q", view.Chapter.Title)
	}
	if len(view.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(view.Sections))
	}
	if view.Sections[0].SectionLetter != "A" {
		t.Errorf("unexpected section %q", view.Sections[0].SectionLetter)
	}

	// Two read modes, one storage: the section content subsumes the
	// subsection, so the chapter view never needs the subsection rows.
	sub := seeded["subA1"]
	if view.Sections[0].Content == "" || sub.Content == "" {
		t.Fatal("seed content missing")
	}

	_, err = m.Entries.GetChapter(99)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for absent chapter, got %v", err)
	}
}

func TestGetByLocation(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seeded := seedCorpus(t)
	defer cleanupCorpus(t)

	m := NewModels(testDB)

	e, err := m.Entries.GetByLocation(32, "", "")
	if err != nil {
		t.Fatalf("chapter lookup failed: %v", err)
	}
	if e.ID != seeded["ch32"].ID {
		t.Error("chapter lookup returned the wrong entry")
	}

	e, err = m.Entries.GetByLocation(32, "A", "1")
	if err != nil {
		t.Fatalf("subsection lookup failed: %v", err)
	}
	if e.ID != seeded["subA1"].ID {
		t.Error("subsection lookup returned the wrong entry")
	}

	// Section Z does not exist; no fallback to the chapter.
	_, err = m.Entries.GetByLocation(32, "Z", "")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing section, got %v", err)
	}
}

func TestCommitIsIdempotent(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seeded := seedCorpus(t)
	defer cleanupCorpus(t)

	// Re-running the same batch must keep every id stable.
	seedCorpus(t)

	m := NewModels(testDB)
	e, err := m.Entries.Get(seeded["secA"].ID)
	if err != nil {
		t.Fatalf("section lost its id after re-import: %v", err)
	}
	if e.Title != seeded["secA"].Title {
		t.Errorf("unexpected title %q after re-import", e.Title)
	}

	var count int
	err = testDB.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("expected 5 entries after re-import, got %d", count)
	}

	err = testDB.QueryRow(`SELECT COUNT(*) FROM scripture_index`).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 3 index rows after re-import, got %d", count)
	}
}

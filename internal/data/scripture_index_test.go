package data

import (
	"testing"

	"shuvoedward/Theology_project/internal/scripture"
)

func TestRangesFor(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seeded := seedCorpus(t)
	defer cleanupCorpus(t)

	m := NewModels(testDB)
	rows, err := m.ScriptureIndex.RangesFor(seeded["ch32"].ID)
	if err != nil {
		t.Fatalf("RangesFor returned an error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].IsPrimary {
		t.Error("primary row must sort first")
	}
	if rows[0].Range.Book != "ROM" || rows[0].Range.StartVerse != 28 {
		t.Errorf("unexpected first range %+v", rows[0].Range)
	}
}

func TestEntriesFor(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seeded := seedCorpus(t)
	defer cleanupCorpus(t)

	m := NewModels(testDB)
	query := scripture.CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 28, EndChapter: 8, EndVerse: 30}

	matches, metadata, err := m.ScriptureIndex.EntriesFor(query, Filters{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("EntriesFor returned an error: %v", err)
	}

	// ch32 row [28,30] is primary, section row [29,33] overlaps partially.
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if metadata.TotalRecords != 2 {
		t.Errorf("unexpected metadata %+v", metadata)
	}
	if !matches[0].IsPrimary || matches[0].Entry.ID != seeded["ch32"].ID {
		t.Error("primary match must come first")
	}
	if matches[1].Entry.ID != seeded["secA"].ID {
		t.Error("expected the section's partial overlap as the second match")
	}
}

func TestEntriesForNoOverlap(t *testing.T) {
	if testDB == nil {
		t.Skip("THEOLOGY_TEST_DB_DSN not set")
	}
	seedCorpus(t)
	defer cleanupCorpus(t)

	m := NewModels(testDB)

	// Romans 8:1-20 ends before every stored verse range of that chapter.
	query := scripture.CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 1, EndChapter: 8, EndVerse: 20}
	matches, _, err := m.ScriptureIndex.EntriesFor(query, Filters{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}

	// A whole-chapter query widens to chapter granularity and matches both.
	query = scripture.CanonicalRange{Book: "ROM", StartChapter: 8, EndChapter: 8}
	matches, _, err = m.ScriptureIndex.EntriesFor(query, Filters{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches for the whole-chapter query, got %d", len(matches))
	}
}

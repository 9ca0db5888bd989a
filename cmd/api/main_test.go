package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/scripture"
	"shuvoedward/Theology_project/internal/service"
	"testing"

	"github.com/google/uuid"
)

var (
	testApp      *application
	testHandlers *Handlers

	chapter32ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("chapter:32"))
	sectionAID  = uuid.NewSHA1(uuid.NameSpaceOID, []byte("section:32:A"))
)

type mockEntryModel struct{}

func (m *mockEntryModel) GetTree() ([]*data.Entry, error) {
	return []*data.Entry{
		{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("part:1")),
			EntryType: data.EntryTypePart,
			Title:     "The Doctrine of God",
			Children: []*data.Entry{
				{ID: chapter32ID, EntryType: data.EntryTypeChapter, ChapterNumber: 32, Title: "Election and Reprobation"},
			},
		},
	}, nil
}

func (m *mockEntryModel) GetChapter(chapterNumber int) (*data.ChapterView, error) {
	if chapterNumber != 32 {
		return nil, data.ErrRecordNotFound
	}
	return &data.ChapterView{
		Chapter: &data.Entry{
			ID:            chapter32ID,
			EntryType:     data.EntryTypeChapter,
			ChapterNumber: 32,
			Title:         "Election and Reprobation",
			Content:       "The counsel of God concerning men.",
		},
		Sections: []*data.Entry{
			{
				ID:            sectionAID,
				EntryType:     data.EntryTypeSection,
				ChapterNumber: 32,
				SectionLetter: "A",
				Title:         "The Doctrine of Election in History",
				Content:       "Section content.",
			},
		},
	}, nil
}

func (m *mockEntryModel) Get(id uuid.UUID) (*data.Entry, error) {
	if id == chapter32ID {
		return &data.Entry{ID: chapter32ID, EntryType: data.EntryTypeChapter, ChapterNumber: 32, Title: "Election and Reprobation"}, nil
	}
	return nil, data.ErrRecordNotFound
}

func (m *mockEntryModel) GetByLocation(chapterNumber int, sectionLetter, subsectionNumber string) (*data.Entry, error) {
	if chapterNumber == 32 && sectionLetter == "" && subsectionNumber == "" {
		return &data.Entry{ID: chapter32ID, EntryType: data.EntryTypeChapter, ChapterNumber: 32, Title: "Election and Reprobation"}, nil
	}
	if chapterNumber == 32 && sectionLetter == "A" && subsectionNumber == "" {
		return &data.Entry{ID: sectionAID, EntryType: data.EntryTypeSection, ChapterNumber: 32, SectionLetter: "A", Title: "The Doctrine of Election in History"}, nil
	}
	return nil, data.ErrRecordNotFound
}

func (m *mockEntryModel) UpsertTx(ctx context.Context, tx *sql.Tx, e *data.Entry) error {
	return nil
}

type mockIndexModel struct{}

func (m *mockIndexModel) RangesFor(entryID uuid.UUID) ([]*data.ScriptureIndexRow, error) {
	if entryID != chapter32ID {
		return []*data.ScriptureIndexRow{}, nil
	}
	return []*data.ScriptureIndexRow{
		{
			EntryID:   chapter32ID,
			Range:     scripture.CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 28, EndChapter: 8, EndVerse: 30},
			IsPrimary: true,
		},
	}, nil
}

func (m *mockIndexModel) EntriesFor(r scripture.CanonicalRange, filters data.Filters) ([]*data.DoctrineMatch, data.Metadata, error) {
	query := scripture.CanonicalRange{Book: "ROM", StartChapter: 8, StartVerse: 28, EndChapter: 8, EndVerse: 30}
	if r != query && !scripture.Overlaps(r, query) {
		return []*data.DoctrineMatch{}, data.Metadata{}, nil
	}
	return []*data.DoctrineMatch{
		{
			Entry:     &data.Entry{ID: chapter32ID, EntryType: data.EntryTypeChapter, ChapterNumber: 32, Title: "Election and Reprobation"},
			Range:     query,
			IsPrimary: true,
		},
	}, data.Metadata{CurrentPage: 1, PageSize: 20, FirstPage: 1, LastPage: 1, TotalRecords: 1}, nil
}

func (m *mockIndexModel) ReplaceForEntryTx(ctx context.Context, tx *sql.Tx, entryID uuid.UUID, rows []*data.ScriptureIndexRow) error {
	return nil
}

type mockTagModel struct{}

func (m *mockTagModel) GetAll() ([]*data.Tag, error) {
	return []*data.Tag{{ID: 1, Name: "soteriology"}}, nil
}

func (m *mockTagModel) Insert(name string) (*data.Tag, error) {
	if name == "soteriology" {
		return nil, data.ErrDuplicateTag
	}
	return &data.Tag{ID: 2, Name: name}, nil
}

func (m *mockTagModel) Assign(chapterNumber int, tagID int64) error {
	if chapterNumber != 32 || tagID != 1 {
		return data.ErrRecordNotFound
	}
	return nil
}

func (m *mockTagModel) Unassign(chapterNumber int, tagID int64) error {
	if chapterNumber != 32 || tagID != 1 {
		return data.ErrRecordNotFound
	}
	return nil
}

func (m *mockTagModel) ChaptersByTag(name string) ([]*data.Entry, error) {
	if name != "soteriology" {
		return []*data.Entry{}, nil
	}
	return []*data.Entry{
		{ID: chapter32ID, EntryType: data.EntryTypeChapter, ChapterNumber: 32, Title: "Election and Reprobation"},
	}, nil
}

type mockImportModel struct {
	commits int
	fail    bool
}

func (m *mockImportModel) Commit(ctx context.Context, plan *data.ImportPlan) error {
	if m.fail {
		return fmt.Errorf("commit failed")
	}
	m.commits++
	return nil
}

func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	models := data.Models{
		Entries:        &mockEntryModel{},
		ScriptureIndex: &mockIndexModel{},
		Tags:           &mockTagModel{},
		Imports:        &mockImportModel{},
	}

	services := service.NewServices(models, logger, nil)

	testApp = &application{
		logger:   logger,
		models:   models,
		services: services,
	}

	testHandlers = NewHandlers(testApp, services)

	os.Exit(m.Run())
}

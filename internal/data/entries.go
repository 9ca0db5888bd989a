package data

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	EntryTypePart       = "part"
	EntryTypeChapter    = "chapter"
	EntryTypeSection    = "section"
	EntryTypeSubsection = "subsection"
)

// Entry is one node of the reference-work hierarchy, stored as a flat
// parent-pointer row. Children is populated only by GetTree.
type Entry struct {
	ID               uuid.UUID  `json:"id"`
	EntryType        string     `json:"entry_type"`
	PartNumber       int        `json:"part_number"`
	ChapterNumber    int        `json:"chapter_number,omitzero"`
	SectionLetter    string     `json:"section_letter,omitzero"`
	SubsectionNumber string     `json:"subsection_number,omitzero"`
	Title            string     `json:"title"`
	Content          string     `json:"content,omitzero"`
	Summary          string     `json:"summary,omitzero"`
	SortOrder        int        `json:"sort_order"`
	ParentID         *uuid.UUID `json:"parent_id,omitempty"`
	Children         []*Entry   `json:"children,omitempty"`
}

// ChapterView is the precise-lookup read mode for one chapter: the chapter
// node plus its sections in reading order. Section content already subsumes
// subsection content, so walking chapter.Content then each section.Content
// reads the chapter continuously.
type ChapterView struct {
	Chapter  *Entry   `json:"chapter"`
	Sections []*Entry `json:"sections"`
}

type EntryModel interface {
	GetTree() ([]*Entry, error)
	GetChapter(chapterNumber int) (*ChapterView, error)
	Get(id uuid.UUID) (*Entry, error)
	GetByLocation(chapterNumber int, sectionLetter, subsectionNumber string) (*Entry, error)
	UpsertTx(ctx context.Context, tx *sql.Tx, e *Entry) error
}

type entryModel struct {
	DB *sql.DB
}

func NewEntryModel(db *sql.DB) *entryModel {
	return &entryModel{DB: db}
}

const entryColumns = `
	id, entry_type, part_number, COALESCE(chapter_number, 0),
	COALESCE(section_letter, ''), COALESCE(subsection_number, ''),
	title, content, COALESCE(summary, ''), sort_order, parent_id`

func scanEntry(scanner interface{ Scan(...any) error }) (*Entry, error) {
	var e Entry
	var parentID uuid.NullUUID

	err := scanner.Scan(
		&e.ID, &e.EntryType, &e.PartNumber, &e.ChapterNumber,
		&e.SectionLetter, &e.SubsectionNumber,
		&e.Title, &e.Content, &e.Summary, &e.SortOrder, &parentID,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		e.ParentID = &parentID.UUID
	}
	return &e, nil
}

func (m *entryModel) GetTree() ([]*Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		ORDER BY sort_order, title`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buildTree(entries), nil
}

func (m *entryModel) GetChapter(chapterNumber int) (*ChapterView, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE chapter_number = $1 AND entry_type IN ('chapter', 'section')
		ORDER BY sort_order, title`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, chapterNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	view := &ChapterView{Sections: []*Entry{}}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if e.EntryType == EntryTypeChapter {
			view.Chapter = e
		} else {
			view.Sections = append(view.Sections, e)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if view.Chapter == nil {
		return nil, ErrRecordNotFound
	}
	return view, nil
}

func (m *entryModel) Get(id uuid.UUID) (*Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	e, err := scanEntry(m.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return e, nil
}

// GetByLocation fetches the most specific entry a link reference names.
// Empty sectionLetter means the chapter node itself; empty subsectionNumber
// with a sectionLetter means the section node.
func (m *entryModel) GetByLocation(chapterNumber int, sectionLetter, subsectionNumber string) (*Entry, error) {
	entryType := EntryTypeChapter
	if sectionLetter != "" {
		entryType = EntryTypeSection
		if subsectionNumber != "" {
			entryType = EntryTypeSubsection
		}
	}

	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_type = $1
		  AND chapter_number = $2
		  AND COALESCE(section_letter, '') = $3
		  AND COALESCE(subsection_number, '') = $4`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	e, err := scanEntry(m.DB.QueryRowContext(ctx, query, entryType, chapterNumber, sectionLetter, subsectionNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return e, nil
}

func (m *entryModel) UpsertTx(ctx context.Context, tx *sql.Tx, e *Entry) error {
	query := `
		INSERT INTO entries (id, entry_type, part_number, chapter_number,
			section_letter, subsection_number, title, content, summary,
			sort_order, parent_id)
		VALUES ($1, $2, $3, NULLIF($4, 0), NULLIF($5, ''), NULLIF($6, ''),
			$7, $8, NULLIF($9, ''), $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			entry_type = EXCLUDED.entry_type,
			part_number = EXCLUDED.part_number,
			chapter_number = EXCLUDED.chapter_number,
			section_letter = EXCLUDED.section_letter,
			subsection_number = EXCLUDED.subsection_number,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			summary = EXCLUDED.summary,
			sort_order = EXCLUDED.sort_order,
			parent_id = EXCLUDED.parent_id`

	var parentID uuid.NullUUID
	if e.ParentID != nil {
		parentID = uuid.NullUUID{UUID: *e.ParentID, Valid: true}
	}

	_, err := tx.ExecContext(ctx, query,
		e.ID, e.EntryType, e.PartNumber, e.ChapterNumber,
		e.SectionLetter, e.SubsectionNumber, e.Title, e.Content, e.Summary,
		e.SortOrder, parentID,
	)
	return err
}

// buildTree turns flat parent-pointer rows into the nested children view.
// Siblings are ordered by sort_order, tie-broken by title for determinism.
func buildTree(entries []*Entry) []*Entry {
	byParent := make(map[uuid.UUID][]*Entry)
	var roots []*Entry

	for _, e := range entries {
		if e.ParentID == nil {
			roots = append(roots, e)
		} else {
			byParent[*e.ParentID] = append(byParent[*e.ParentID], e)
		}
	}

	order := func(list []*Entry) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].SortOrder != list[j].SortOrder {
				return list[i].SortOrder < list[j].SortOrder
			}
			return list[i].Title < list[j].Title
		})
	}

	for _, e := range entries {
		if children, ok := byParent[e.ID]; ok {
			order(children)
			e.Children = children
		}
	}
	order(roots)

	if roots == nil {
		roots = []*Entry{}
	}
	return roots
}

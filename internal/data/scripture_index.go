package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"shuvoedward/Theology_project/internal/scripture"
)

// ScriptureIndexRow links one entry to one cited range of the primary text.
// Rows are written only by the import pipeline and never mutated afterward.
type ScriptureIndexRow struct {
	ID        uuid.UUID                `json:"id"`
	EntryID   uuid.UUID                `json:"entry_id"`
	Range     scripture.CanonicalRange `json:"range"`
	IsPrimary bool                     `json:"is_primary"`
}

// DoctrineMatch is one reverse-lookup result: an entry whose stored range
// overlaps the queried passage.
type DoctrineMatch struct {
	Entry     *Entry                   `json:"entry"`
	Range     scripture.CanonicalRange `json:"range"`
	IsPrimary bool                     `json:"is_primary"`
}

type ScriptureIndexModel interface {
	RangesFor(entryID uuid.UUID) ([]*ScriptureIndexRow, error)
	EntriesFor(r scripture.CanonicalRange, filters Filters) ([]*DoctrineMatch, Metadata, error)
	ReplaceForEntryTx(ctx context.Context, tx *sql.Tx, entryID uuid.UUID, rows []*ScriptureIndexRow) error
}

type scriptureIndexModel struct {
	DB *sql.DB
}

func NewScriptureIndexModel(db *sql.DB) *scriptureIndexModel {
	return &scriptureIndexModel{DB: db}
}

func (m *scriptureIndexModel) RangesFor(entryID uuid.UUID) ([]*ScriptureIndexRow, error) {
	query := `
		SELECT id, entry_id, book_id, start_chapter, COALESCE(start_verse, 0),
			end_chapter, COALESCE(end_verse, 0), is_primary
		FROM scripture_index
		WHERE entry_id = $1
		ORDER BY is_primary DESC, book_id, start_chapter, COALESCE(start_verse, 0)`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*ScriptureIndexRow{}
	for rows.Next() {
		var row ScriptureIndexRow
		err := rows.Scan(
			&row.ID, &row.EntryID, &row.Range.Book,
			&row.Range.StartChapter, &row.Range.StartVerse,
			&row.Range.EndChapter, &row.Range.EndVerse,
			&row.IsPrimary,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// EntriesFor answers "what entries discuss this passage". The SQL narrows to
// rows of the same book whose chapter interval intersects the query; the
// verse-granularity overlap test then runs in Go over that small candidate
// set, because rows without verse bounds widen to whole chapters. Results
// keep the index ordering: primary rows first, then the containing chapter's
// sort order.
func (m *scriptureIndexModel) EntriesFor(r scripture.CanonicalRange, filters Filters) ([]*DoctrineMatch, Metadata, error) {
	query := `
		SELECT e.id, e.entry_type, e.part_number, COALESCE(e.chapter_number, 0),
			COALESCE(e.section_letter, ''), COALESCE(e.subsection_number, ''),
			e.title, e.content, COALESCE(e.summary, ''), e.sort_order, e.parent_id,
			si.book_id, si.start_chapter, COALESCE(si.start_verse, 0),
			si.end_chapter, COALESCE(si.end_verse, 0), si.is_primary
		FROM scripture_index si
		JOIN entries e ON e.id = si.entry_id
		JOIN entries ch ON ch.entry_type = 'chapter' AND ch.chapter_number = e.chapter_number
		WHERE si.book_id = $1
		  AND si.start_chapter <= $2
		  AND si.end_chapter >= $3
		ORDER BY si.is_primary DESC, ch.sort_order, e.sort_order, si.start_chapter`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, r.Book, r.EndChapter, r.StartChapter)
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	matches := []*DoctrineMatch{}
	for rows.Next() {
		var e Entry
		var parentID uuid.NullUUID
		var stored scripture.CanonicalRange
		var isPrimary bool

		err := rows.Scan(
			&e.ID, &e.EntryType, &e.PartNumber, &e.ChapterNumber,
			&e.SectionLetter, &e.SubsectionNumber,
			&e.Title, &e.Content, &e.Summary, &e.SortOrder, &parentID,
			&stored.Book, &stored.StartChapter, &stored.StartVerse,
			&stored.EndChapter, &stored.EndVerse, &isPrimary,
		)
		if err != nil {
			return nil, Metadata{}, err
		}
		if parentID.Valid {
			e.ParentID = &parentID.UUID
		}

		if !scripture.Overlaps(stored, r) {
			continue
		}
		matches = append(matches, &DoctrineMatch{Entry: &e, Range: stored, IsPrimary: isPrimary})
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	return paginateMatches(matches, filters)
}

// paginateMatches applies pagination after the verse-level filter; the
// candidate set is small (one book's rows) so slicing in memory keeps the
// overlap semantics out of SQL.
func paginateMatches(matches []*DoctrineMatch, filters Filters) ([]*DoctrineMatch, Metadata, error) {
	total := len(matches)
	metadata := calculateMetadata(total, filters.Page, filters.PageSize)

	start := filters.offset()
	if start >= total {
		return []*DoctrineMatch{}, metadata, nil
	}
	end := min(start+filters.limit(), total)

	return matches[start:end], metadata, nil
}

func (m *scriptureIndexModel) ReplaceForEntryTx(ctx context.Context, tx *sql.Tx, entryID uuid.UUID, rows []*ScriptureIndexRow) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM scripture_index WHERE entry_id = $1`, entryID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scripture_index (id, entry_id, book_id, start_chapter,
			start_verse, end_chapter, end_verse, is_primary)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0), $6, NULLIF($7, 0), $8)`

	for _, row := range rows {
		_, err := tx.ExecContext(ctx, query,
			row.ID, entryID, row.Range.Book,
			row.Range.StartChapter, row.Range.StartVerse,
			row.Range.EndChapter, row.Range.EndVerse,
			row.IsPrimary,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"shuvoedward/Theology_project/internal/cache"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/scheduler"
	"shuvoedward/Theology_project/internal/scripture"
)

// entryNamespace seeds the UUIDv5 ids derived from an entry's natural key.
// Deterministic ids make re-import a true upsert: an unchanged batch writes
// the same ids, and previously resolved links keep pointing at them.
var entryNamespace = uuid.MustParse("b5f3f1f6-1b9f-4d27-9a39-5a4bfd1cf3a2")

// maxPrimaryPerChapter caps how many of a chapter's earliest parsed ranges
// are flagged as its representative citations.
const maxPrimaryPerChapter = 5

// ImportRecord is the boundary shape produced by the external
// markup-scraping step, one record per part/chapter/section/subsection in
// document order. RawContent is opaque text; no markup cleanup happens here.
type ImportRecord struct {
	PartNumber       int      `json:"part_number"`
	PartTitle        string   `json:"part_title"`
	ChapterNumber    int      `json:"chapter_number"`
	ChapterTitle     string   `json:"chapter_title"`
	SectionLetter    string   `json:"section_letter,omitzero"`
	SectionTitle     string   `json:"section_title,omitzero"`
	SubsectionNumber string   `json:"subsection_number,omitzero"`
	SubsectionTitle  string   `json:"subsection_title,omitzero"`
	Summary          string   `json:"summary,omitzero"`
	RawContent       string   `json:"raw_content"`
	CitedRanges      []string `json:"cited_ranges,omitzero"`
}

type ImportSummary struct {
	Imported      int `json:"imported"`
	Skipped       int `json:"skipped"`
	ScriptureRows int `json:"scripture_rows_created"`
}

// ImportService turns flat import records into a committed hierarchy
// snapshot plus scripture index rows, as one all-or-nothing batch.
type ImportService struct {
	importModel data.ImportModel
	cache       *cache.RedisClient
	logger      *slog.Logger

	// Scheduler, when set, receives cache warm tasks after a commit.
	Scheduler *scheduler.Scheduler
}

func NewImportService(importModel data.ImportModel, redisClient *cache.RedisClient, logger *slog.Logger) *ImportService {
	return &ImportService{
		importModel: importModel,
		cache:       redisClient,
		logger:      logger,
	}
}

// ImportBatch builds and commits the plan for a batch. Structural violations
// (duplicate chapter across parts, subsection without its section) abort the
// whole batch; a record missing required fields is skipped; an unparsable
// cited range drops only that index row. Cancellation mid-commit rolls back.
func (s *ImportService) ImportBatch(ctx context.Context, records []ImportRecord) (*ImportSummary, error) {
	plan, summary, err := buildPlan(records, s.logger)
	if err != nil {
		return nil, err
	}

	if err := s.importModel.Commit(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("import batch committed",
		"imported", summary.Imported,
		"skipped", summary.Skipped,
		"scripture_rows", summary.ScriptureRows,
	)

	if s.cache != nil {
		if err := s.cache.InvalidateTheology(); err != nil {
			s.logger.Error(err.Error())
		}
	}
	if s.Scheduler != nil {
		s.Scheduler.Submit(scheduler.Task{
			ID:         "warm-tree-" + time.Now().Format(time.RFC3339Nano),
			Type:       scheduler.WarmTreeCache,
			MaxRetries: 3,
		})
	}

	return summary, nil
}

// planBuilder accumulates one batch. Records arrive in document order, so
// parents are created before (or by) the records that need them.
type planBuilder struct {
	plan    *data.ImportPlan
	summary ImportSummary
	logger  *slog.Logger

	parts       map[int]*data.Entry
	chapters    map[int]*data.Entry
	chapterPart map[int]int
	sections    map[string]*data.Entry
	subsections map[string]struct{}

	primaryCount map[int]int
	nextOrder    int
}

func buildPlan(records []ImportRecord, logger *slog.Logger) (*data.ImportPlan, *ImportSummary, error) {
	if len(records) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	b := &planBuilder{
		plan: &data.ImportPlan{
			Rows: make(map[uuid.UUID][]*data.ScriptureIndexRow),
		},
		logger:       logger,
		parts:        make(map[int]*data.Entry),
		chapters:     make(map[int]*data.Entry),
		chapterPart:  make(map[int]int),
		sections:     make(map[string]*data.Entry),
		subsections:  make(map[string]struct{}),
		primaryCount: make(map[int]int),
	}

	for _, record := range records {
		if err := b.addRecord(record); err != nil {
			return nil, nil, err
		}
	}

	return b.plan, &b.summary, nil
}

func (b *planBuilder) addRecord(record ImportRecord) error {
	if record.PartNumber < 1 || record.ChapterNumber < 1 || strings.TrimSpace(record.RawContent) == "" {
		b.logger.Warn("skipping import record with missing required fields",
			"part", record.PartNumber,
			"chapter", record.ChapterNumber,
		)
		b.summary.Skipped++
		return nil
	}

	if record.SubsectionNumber != "" && record.SectionLetter == "" {
		return fmt.Errorf("%w: chapter %d subsection %s", ErrOrphanSubsection, record.ChapterNumber, record.SubsectionNumber)
	}

	part := b.ensurePart(record)
	chapter, err := b.ensureChapter(record, part)
	if err != nil {
		return err
	}

	var target *data.Entry
	switch {
	case record.SubsectionNumber != "":
		target, err = b.addSubsection(record, chapter)
	case record.SectionLetter != "":
		target, err = b.addSection(record, chapter)
	default:
		// Chapter-intro record; the chapter node itself carries the content.
		if chapter.Content != "" {
			err = fmt.Errorf("%w: chapter %d", ErrDuplicateChapter, record.ChapterNumber)
		} else {
			chapter.Content = record.RawContent
			chapter.Summary = record.Summary
			target = chapter
		}
	}
	if err != nil {
		return err
	}

	b.addCitedRanges(target, record)
	return nil
}

func (b *planBuilder) newEntry(key, entryType string, parent *data.Entry) *data.Entry {
	e := &data.Entry{
		ID:        uuid.NewSHA1(entryNamespace, []byte(key)),
		EntryType: entryType,
		SortOrder: b.nextOrder,
	}
	b.nextOrder++
	if parent != nil {
		e.ParentID = &parent.ID
	}

	b.plan.Entries = append(b.plan.Entries, e)
	b.summary.Imported++
	return e
}

func (b *planBuilder) ensurePart(record ImportRecord) *data.Entry {
	if part, ok := b.parts[record.PartNumber]; ok {
		return part
	}

	part := b.newEntry(fmt.Sprintf("part:%d", record.PartNumber), data.EntryTypePart, nil)
	part.PartNumber = record.PartNumber
	part.Title = record.PartTitle
	b.parts[record.PartNumber] = part
	return part
}

func (b *planBuilder) ensureChapter(record ImportRecord, part *data.Entry) (*data.Entry, error) {
	if chapter, ok := b.chapters[record.ChapterNumber]; ok {
		if b.chapterPart[record.ChapterNumber] != record.PartNumber {
			return nil, fmt.Errorf("%w: chapter %d", ErrDuplicateChapter, record.ChapterNumber)
		}
		return chapter, nil
	}

	chapter := b.newEntry(fmt.Sprintf("chapter:%d", record.ChapterNumber), data.EntryTypeChapter, part)
	chapter.PartNumber = record.PartNumber
	chapter.ChapterNumber = record.ChapterNumber
	chapter.Title = record.ChapterTitle
	b.chapters[record.ChapterNumber] = chapter
	b.chapterPart[record.ChapterNumber] = record.PartNumber
	return chapter, nil
}

func (b *planBuilder) addSection(record ImportRecord, chapter *data.Entry) (*data.Entry, error) {
	key := fmt.Sprintf("section:%d:%s", record.ChapterNumber, record.SectionLetter)
	if _, ok := b.sections[key]; ok {
		return nil, fmt.Errorf("%w: chapter %d section %s", ErrDuplicateSection, record.ChapterNumber, record.SectionLetter)
	}

	section := b.newEntry(key, data.EntryTypeSection, chapter)
	section.PartNumber = record.PartNumber
	section.ChapterNumber = record.ChapterNumber
	section.SectionLetter = record.SectionLetter
	section.Title = record.SectionTitle
	section.Summary = record.Summary
	// Section content starts as the section's own intro; subsection records
	// append to it so the section alone serves continuous reading.
	section.Content = record.RawContent
	b.sections[key] = section
	return section, nil
}

func (b *planBuilder) addSubsection(record ImportRecord, chapter *data.Entry) (*data.Entry, error) {
	sectionKey := fmt.Sprintf("section:%d:%s", record.ChapterNumber, record.SectionLetter)
	section, ok := b.sections[sectionKey]
	if !ok {
		return nil, fmt.Errorf("%w: chapter %d section %s subsection %s",
			ErrOrphanSubsection, record.ChapterNumber, record.SectionLetter, record.SubsectionNumber)
	}

	key := fmt.Sprintf("subsection:%d:%s.%s", record.ChapterNumber, record.SectionLetter, record.SubsectionNumber)
	if _, ok := b.subsections[key]; ok {
		return nil, fmt.Errorf("%w: chapter %d subsection %s.%s",
			ErrDuplicateSubsection, record.ChapterNumber, record.SectionLetter, record.SubsectionNumber)
	}
	b.subsections[key] = struct{}{}

	subsection := b.newEntry(key, data.EntryTypeSubsection, section)
	subsection.PartNumber = record.PartNumber
	subsection.ChapterNumber = record.ChapterNumber
	subsection.SectionLetter = record.SectionLetter
	subsection.SubsectionNumber = record.SubsectionNumber
	subsection.Title = record.SubsectionTitle
	subsection.Summary = record.Summary
	subsection.Content = record.RawContent

	// Re-embed the subsection heading inline so the aggregated section text
	// reads continuously in original order.
	heading := fmt.Sprintf("### %s.%s %s", record.SectionLetter, record.SubsectionNumber, record.SubsectionTitle)
	section.Content = section.Content + "\n\n" + heading + "\n\n" + record.RawContent

	return subsection, nil
}

// addCitedRanges parses each cited range and emits an index row. An
// unparsable citation is logged and skipped without failing the entry. The
// first ranges of each chapter, up to the cap, are flagged primary.
func (b *planBuilder) addCitedRanges(entry *data.Entry, record ImportRecord) {
	for i, cited := range record.CitedRanges {
		r := scripture.Parse(cited)
		if r == nil {
			b.logger.Warn("skipping unparsable cited range",
				"chapter", record.ChapterNumber,
				"range", cited,
			)
			continue
		}

		isPrimary := false
		if b.primaryCount[entry.ChapterNumber] < maxPrimaryPerChapter {
			isPrimary = true
			b.primaryCount[entry.ChapterNumber]++
		}

		rowKey := fmt.Sprintf("row:%s:%d:%s", entry.ID, i, scripture.Format(*r))
		b.plan.Rows[entry.ID] = append(b.plan.Rows[entry.ID], &data.ScriptureIndexRow{
			ID:        uuid.NewSHA1(entryNamespace, []byte(rowKey)),
			EntryID:   entry.ID,
			Range:     *r,
			IsPrimary: isPrimary,
		})
		b.summary.ScriptureRows++
	}
}

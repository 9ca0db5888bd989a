package service

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"shuvoedward/Theology_project/internal/cache"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/links"
	"shuvoedward/Theology_project/internal/scripture"
	"shuvoedward/Theology_project/internal/validator"
)

// TheologyService serves the read path over the committed corpus snapshot:
// the hierarchy views, the scripture cross-reference lookups, and chapter
// HTML rendering. All methods are read-only and safe for concurrent use.
type TheologyService struct {
	entries data.EntryModel
	index   data.ScriptureIndexModel
	cache   *cache.RedisClient
	logger  *slog.Logger
}

func NewTheologyService(
	entries data.EntryModel,
	index data.ScriptureIndexModel,
	redisClient *cache.RedisClient,
	logger *slog.Logger,
) *TheologyService {
	return &TheologyService{
		entries: entries,
		index:   index,
		cache:   redisClient,
		logger:  logger,
	}
}

// GetTree returns the full forest, read through the cache. Cache failures
// are logged and fall back to the database; reads never fail on redis.
func (s *TheologyService) GetTree() ([]*data.Entry, error) {
	if s.cache != nil {
		payload, err := s.cache.GetTree()
		if err != nil {
			s.logger.Error(err.Error())
		}
		if payload != nil {
			var roots []*data.Entry
			if err := json.Unmarshal(payload, &roots); err == nil {
				return roots, nil
			}
			s.logger.Error("discarding corrupt cached tree")
		}
	}

	roots, err := s.entries.GetTree()
	if err != nil {
		return nil, err
	}

	s.cacheTree(roots)
	return roots, nil
}

func (s *TheologyService) GetChapter(chapterNumber int) (*data.ChapterView, error) {
	if s.cache != nil {
		payload, err := s.cache.GetChapter(chapterNumber)
		if err != nil {
			s.logger.Error(err.Error())
		}
		if payload != nil {
			var view data.ChapterView
			if err := json.Unmarshal(payload, &view); err == nil {
				return &view, nil
			}
			s.logger.Error("discarding corrupt cached chapter", "chapter", chapterNumber)
		}
	}

	view, err := s.entries.GetChapter(chapterNumber)
	if err != nil {
		return nil, err
	}

	s.cacheChapter(chapterNumber, view)
	return view, nil
}

func (s *TheologyService) GetEntry(id uuid.UUID) (*data.Entry, error) {
	return s.entries.Get(id)
}

func (s *TheologyService) RangesFor(entryID uuid.UUID) ([]*data.ScriptureIndexRow, error) {
	return s.index.RangesFor(entryID)
}

// DoctrinesForPassage answers "what entries discuss this passage". Verse
// bounds are optional; when absent the whole chapter is queried. A validator
// with errors (and no query) comes back for out-of-range input.
func (s *TheologyService) DoctrinesForPassage(
	book string,
	chapter, startVerse, endVerse int,
	filters data.Filters,
) ([]*data.DoctrineMatch, data.Metadata, *validator.Validator, error) {
	v := validator.New()

	bookID, ok := scripture.ResolveBookID(book)
	if !ok {
		v.AddError("book", "must be a valid book")
		return nil, data.Metadata{}, v, nil
	}

	v.Check(chapter >= 1 && chapter <= scripture.ChapterCount(bookID), "chapter", "outside the book's chapter range")
	v.Check(startVerse >= 0 && endVerse >= 0, "verse", "can not be negative")
	v.Check((startVerse == 0) == (endVerse == 0), "verse", "provide both start and end verse, or neither")
	v.Check(startVerse <= endVerse || endVerse == 0, "verse", "start verse must not exceed end verse")
	filters.Validate(v)
	if !v.Valid() {
		return nil, data.Metadata{}, v, nil
	}

	query := scripture.CanonicalRange{
		Book:         bookID,
		StartChapter: chapter,
		StartVerse:   startVerse,
		EndChapter:   chapter,
		EndVerse:     endVerse,
	}

	matches, metadata, err := s.index.EntriesFor(query, filters)
	if err != nil {
		return nil, data.Metadata{}, nil, err
	}
	return matches, metadata, nil, nil
}

// RenderChapterHTML renders a chapter for continuous reading: the chapter
// intro followed by each section (whose content already subsumes its
// subsections), with embedded link tokens resolved to anchors.
func (s *TheologyService) RenderChapterHTML(chapterNumber int) (string, error) {
	view, err := s.GetChapter(chapterNumber)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("# " + view.Chapter.Title + "\n\n")
	sb.WriteString(view.Chapter.Content)
	for _, section := range view.Sections {
		sb.WriteString("\n\n## " + section.SectionLetter + ". " + section.Title + "\n\n")
		sb.WriteString(section.Content)
	}

	return links.RenderHTML(sb.String(), func(ref links.Reference) *data.Entry {
		entry, err := s.entries.GetByLocation(ref.ChapterNumber, ref.SectionLetter, ref.SubsectionNumber)
		if err != nil {
			return nil
		}
		return entry
	})
}

// WarmTree and WarmChapter implement scheduler.Warmer.

func (s *TheologyService) WarmTree() error {
	roots, err := s.entries.GetTree()
	if err != nil {
		return err
	}
	s.cacheTree(roots)
	return nil
}

func (s *TheologyService) WarmChapter(chapterNumber int) error {
	view, err := s.entries.GetChapter(chapterNumber)
	if err != nil {
		return err
	}
	s.cacheChapter(chapterNumber, view)
	return nil
}

func (s *TheologyService) cacheTree(roots []*data.Entry) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(roots)
	if err == nil {
		err = s.cache.SetTree(payload)
	}
	if err != nil {
		s.logger.Error(err.Error())
	}
}

func (s *TheologyService) cacheChapter(chapterNumber int, view *data.ChapterView) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err == nil {
		err = s.cache.SetChapter(chapterNumber, payload)
	}
	if err != nil {
		s.logger.Error(err.Error())
	}
}

package service

import (
	"errors"
	"log/slog"

	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/links"
)

// LinkService resolves bracket tokens against the hierarchy. Resolution is
// exact: a token naming a node that does not exist fails rather than falling
// back to the node's parent, and the caller decides how to present it.
type LinkService struct {
	entries data.EntryModel
	logger  *slog.Logger
}

func NewLinkService(entries data.EntryModel, logger *slog.Logger) *LinkService {
	return &LinkService{
		entries: entries,
		logger:  logger,
	}
}

// Resolve parses and resolves a token. ErrMalformedToken for bad grammar;
// data.ErrRecordNotFound (with the parsed reference) for a dangling link.
func (s *LinkService) Resolve(token string) (*data.Entry, *links.Reference, error) {
	ref := links.ParseToken(token)
	if ref == nil {
		return nil, nil, ErrMalformedToken
	}

	entry, err := s.entries.GetByLocation(ref.ChapterNumber, ref.SectionLetter, ref.SubsectionNumber)
	if err != nil {
		return nil, ref, err
	}
	return entry, ref, nil
}

// Present builds the presentation descriptor for a token. A dangling link is
// not an error here; it produces a broken-link descriptor.
func (s *LinkService) Present(token, displayText string) (*links.Presentation, error) {
	entry, ref, err := s.Resolve(token)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			p := links.Present(*ref, nil, displayText)
			return &p, nil
		}
		return nil, err
	}

	p := links.Present(*ref, entry, displayText)
	return &p, nil
}

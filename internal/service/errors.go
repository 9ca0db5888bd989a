package service

import "errors"

// Import-time structural violations; any of these aborts the whole batch.
var (
	ErrEmptyBatch          = errors.New("import batch contains no records")
	ErrDuplicateChapter    = errors.New("chapter number appears under two different parts")
	ErrDuplicateSection    = errors.New("duplicate section in import batch")
	ErrDuplicateSubsection = errors.New("duplicate subsection in import batch")
	ErrOrphanSubsection    = errors.New("subsection references a section that does not exist")
)

var ErrMalformedToken = errors.New("malformed link token")

var ErrInvalidReference = errors.New("unparsable scripture reference")

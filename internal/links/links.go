// Package links implements the in-prose bracket grammar that points at
// entries of the reference hierarchy:
//
//	[[ST:Ch32]]     chapter
//	[[ST:Ch32:A]]   section
//	[[ST:Ch32:A.1]] subsection
package links

import (
	"fmt"
	"regexp"
	"strconv"
)

// Reference is a parsed link token, not yet resolved to an entry.
type Reference struct {
	ChapterNumber    int    `json:"chapter_number"`
	SectionLetter    string `json:"section_letter,omitzero"`
	SubsectionNumber string `json:"subsection_number,omitzero"`
}

var (
	tokenRE    = regexp.MustCompile(`^\[\[ST:Ch([0-9]+)(?::([A-Za-z])(?:\.([0-9]+))?)?\]\]$`)
	embeddedRE = regexp.MustCompile(`\[\[ST:Ch[0-9]+(?::[A-Za-z](?:\.[0-9]+)?)?\]\]`)
)

// ParseToken parses one bracket token. It returns nil for anything that is
// not bit-exact grammar: a malformed token is an expected case, not an error.
// Case of the section letter is preserved.
func ParseToken(token string) *Reference {
	m := tokenRE.FindStringSubmatch(token)
	if m == nil {
		return nil
	}

	chapter, err := strconv.Atoi(m[1])
	if err != nil || chapter < 1 {
		return nil
	}

	return &Reference{
		ChapterNumber:    chapter,
		SectionLetter:    m[2],
		SubsectionNumber: m[3],
	}
}

// Token renders the canonical token for a reference, the inverse of
// ParseToken.
func (r Reference) Token() string {
	switch {
	case r.SubsectionNumber != "":
		return fmt.Sprintf("[[ST:Ch%d:%s.%s]]", r.ChapterNumber, r.SectionLetter, r.SubsectionNumber)
	case r.SectionLetter != "":
		return fmt.Sprintf("[[ST:Ch%d:%s]]", r.ChapterNumber, r.SectionLetter)
	default:
		return fmt.Sprintf("[[ST:Ch%d]]", r.ChapterNumber)
	}
}

// Label is the human-readable form of the reference: "Ch. 32", "Ch. 32 A",
// "Ch. 32 A.1".
func (r Reference) Label() string {
	switch {
	case r.SubsectionNumber != "":
		return fmt.Sprintf("Ch. %d %s.%s", r.ChapterNumber, r.SectionLetter, r.SubsectionNumber)
	case r.SectionLetter != "":
		return fmt.Sprintf("Ch. %d %s", r.ChapterNumber, r.SectionLetter)
	default:
		return fmt.Sprintf("Ch. %d", r.ChapterNumber)
	}
}

// ReplaceTokens rewrites every embedded link token in prose through the
// given function, leaving surrounding text untouched.
func ReplaceTokens(text string, replace func(Reference) string) string {
	return embeddedRE.ReplaceAllStringFunc(text, func(token string) string {
		ref := ParseToken(token)
		if ref == nil {
			return token
		}
		return replace(*ref)
	})
}

package links

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"shuvoedward/Theology_project/internal/data"
)

// Presentation describes how a link token should be shown. Consumed by the
// editing/rendering frontend; producing it never touches the store.
type Presentation struct {
	Token    string    `json:"token"`
	Resolved bool      `json:"resolved"`
	EntryID  uuid.UUID `json:"entry_id,omitzero"`
	Display  string    `json:"display"`
	Href     string    `json:"href,omitzero"`
}

// Present builds the descriptor for a reference and its resolution result.
// A nil entry produces a broken-link descriptor; the frontend decides how to
// show it.
func Present(ref Reference, entry *data.Entry, displayText string) Presentation {
	p := Presentation{
		Token:   ref.Token(),
		Display: displayText,
	}
	if p.Display == "" {
		p.Display = ref.Label()
	}

	if entry != nil {
		p.Resolved = true
		p.EntryID = entry.ID
		p.Href = fmt.Sprintf("/v1/theology/entries/%s", entry.ID)
		if displayText == "" {
			p.Display = entry.Title
		}
	}
	return p
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderHTML converts stored entry content to HTML, rewriting embedded link
// tokens to anchors first. resolve returns nil for a dangling reference, in
// which case the token renders as plain label text.
func RenderHTML(content string, resolve func(Reference) *data.Entry) (string, error) {
	rewritten := ReplaceTokens(content, func(ref Reference) string {
		entry := resolve(ref)
		if entry == nil {
			return ref.Label()
		}
		return fmt.Sprintf("[%s](/v1/theology/entries/%s)", entry.Title, entry.ID)
	})

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(rewritten), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

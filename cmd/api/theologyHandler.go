package main

import (
	"errors"
	"net/http"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/scripture"
	"shuvoedward/Theology_project/internal/service"

	"github.com/julienschmidt/httprouter"
)

type TheologyHandler struct {
	app     *application
	service *service.TheologyService
}

func NewTheologyHandler(app *application, theologyService *service.TheologyService) *TheologyHandler {
	return &TheologyHandler{
		app:     app,
		service: theologyService,
	}
}

func (h *TheologyHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/theology/tree",
		h.app.generalRateLimit(h.GetTree))

	router.HandlerFunc(http.MethodGet, "/v1/theology/chapters/:chapter",
		h.app.generalRateLimit(h.GetChapter))

	router.HandlerFunc(http.MethodGet, "/v1/theology/chapters/:chapter/html",
		h.app.generalRateLimit(h.GetChapterHTML))

	router.HandlerFunc(http.MethodGet, "/v1/theology/entries/:id",
		h.app.generalRateLimit(h.GetEntry))

	router.HandlerFunc(http.MethodGet, "/v1/theology/entries/:id/references",
		h.app.generalRateLimit(h.GetEntryReferences))

	router.HandlerFunc(http.MethodGet, "/v1/doctrines/:book/:chapter",
		h.app.generalRateLimit(h.DoctrinesForPassage))
}

// GetTree returns the doctrine hierarchy
// @Summary Get the full doctrine hierarchy
// @Description Returns the complete part/chapter/section/subsection forest, ordered by sort order. Content bodies are included on every node.
// @Tags theology
// @Produce json
// @Success 200 {object} map[string]interface{} "Hierarchy roots"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/tree [get]
func (h *TheologyHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.service.GetTree()
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"tree": roots}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// GetChapter returns one chapter with its sections
// @Summary Get a chapter
// @Description Returns a chapter entry and its sections (subsection content is already aggregated into each section).
// @Tags theology
// @Produce json
// @Param chapter path int true "Chapter number"
// @Success 200 {object} map[string]data.ChapterView "Chapter view"
// @Failure 400 {object} map[string]string "Invalid chapter parameter"
// @Failure 404 {object} map[string]string "Chapter not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/chapters/{chapter} [get]
func (h *TheologyHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.app.readChapterParam(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	view, err := h.service.GetChapter(chapter)
	if err != nil {
		h.handleTheologyError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"chapter": view}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// GetChapterHTML renders a chapter as HTML
// @Summary Render a chapter as HTML
// @Description Renders a chapter for continuous reading. Internal link tokens are resolved to anchors; links to missing targets degrade to plain labels.
// @Tags theology
// @Produce html
// @Param chapter path int true "Chapter number"
// @Success 200 {string} string "Rendered HTML"
// @Failure 400 {object} map[string]string "Invalid chapter parameter"
// @Failure 404 {object} map[string]string "Chapter not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/chapters/{chapter}/html [get]
func (h *TheologyHandler) GetChapterHTML(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.app.readChapterParam(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	html, err := h.service.RenderChapterHTML(chapter)
	if err != nil {
		h.handleTheologyError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(html)); err != nil {
		h.app.logError(r, err)
	}
}

// GetEntry returns a single entry
// @Summary Get an entry by id
// @Tags theology
// @Produce json
// @Param id path string true "Entry UUID"
// @Success 200 {object} map[string]data.Entry "Entry"
// @Failure 400 {object} map[string]string "Invalid id parameter"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/entries/{id} [get]
func (h *TheologyHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readUUIDParam(r, "id")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	entry, err := h.service.GetEntry(id)
	if err != nil {
		h.handleTheologyError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"entry": entry}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// GetEntryReferences returns the scripture ranges cited by an entry
// @Summary Get an entry's cited scripture ranges
// @Description Returns every scripture range indexed for the entry, primary passages first, each with its canonical display form.
// @Tags theology
// @Produce json
// @Param id path string true "Entry UUID"
// @Success 200 {object} map[string]interface{} "Cited ranges"
// @Failure 400 {object} map[string]string "Invalid id parameter"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/entries/{id}/references [get]
func (h *TheologyHandler) GetEntryReferences(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readUUIDParam(r, "id")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	rows, err := h.service.RangesFor(id)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	type citedRange struct {
		Range     scripture.CanonicalRange `json:"range"`
		Formatted string                   `json:"formatted"`
		IsPrimary bool                     `json:"is_primary"`
	}

	cited := make([]citedRange, 0, len(rows))
	for _, row := range rows {
		cited = append(cited, citedRange{
			Range:     row.Range,
			Formatted: scripture.Format(row.Range),
			IsPrimary: row.IsPrimary,
		})
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"references": cited}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// DoctrinesForPassage returns entries discussing a passage
// @Summary Find doctrines discussing a passage
// @Description Returns the entries whose indexed scripture ranges overlap the given passage. Verse bounds come from the svs/evs query parameters; omit both to query the whole chapter. Primary treatments sort first, then corpus order.
// @Tags doctrines
// @Produce json
// @Param book path string true "Book name or abbreviation"
// @Param chapter path int true "Chapter number"
// @Param svs query int false "Start verse"
// @Param evs query int false "End verse"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} map[string]interface{} "Matching entries with overlap ranges and pagination metadata"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 422 {object} map[string]map[string]string "Validation errors"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/doctrines/{book}/{chapter} [get]
func (h *TheologyHandler) DoctrinesForPassage(w http.ResponseWriter, r *http.Request) {
	query, err := h.app.getPassageQuery(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	filters, err := h.app.readPaginationParams(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	matches, metadata, v, err := h.service.DoctrinesForPassage(
		query.Book, query.Chapter, query.StartVerse, query.EndVerse, filters)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}
	if v != nil && !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{
		"doctrines": matches,
		"metadata":  metadata,
	}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

func (h *TheologyHandler) handleTheologyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, data.ErrRecordNotFound):
		h.app.notFoundResponse(w, r)
	default:
		h.app.serverErrorResponse(w, r, err)
	}
}

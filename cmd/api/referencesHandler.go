package main

import (
	"net/http"
	"shuvoedward/Theology_project/internal/scripture"
	"strings"

	"github.com/julienschmidt/httprouter"
)

type ReferenceHandler struct {
	app *application
}

func NewReferenceHandler(app *application) *ReferenceHandler {
	return &ReferenceHandler{
		app: app,
	}
}

func (h *ReferenceHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/references/parse",
		h.app.generalRateLimit(h.Parse))

	router.HandlerFunc(http.MethodGet, "/v1/references/books",
		h.app.generalRateLimit(h.ListBooks))
}

// Parse parses a human scripture reference
// @Summary Parse a scripture reference
// @Description Parses a human-written scripture reference (e.g. "Romans 8:28-30", "Gen 1", "2 Cor. 5:17") into its canonical range, plus the canonical display form. Unknown books, out-of-range chapters, and malformed input fail.
// @Tags references
// @Produce json
// @Param q query string true "Reference text to parse"
// @Success 200 {object} map[string]interface{} "Canonical range and formatted reference"
// @Failure 400 {object} map[string]string "Missing q parameter"
// @Failure 422 {object} map[string]string "Unparsable reference"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /v1/references/parse [get]
func (h *ReferenceHandler) Parse(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		h.app.errorResponse(w, r, http.StatusBadRequest, "q parameter must be provided")
		return
	}

	parsed := scripture.Parse(q)
	if parsed == nil {
		h.app.errorResponse(w, r, http.StatusUnprocessableEntity, "not a recognizable scripture reference")
		return
	}

	err := h.app.writeJSON(w, http.StatusOK, envelope{
		"reference": parsed,
		"formatted": scripture.Format(*parsed),
	}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// ListBooks lists the canonical books
// @Summary List canonical books
// @Description Lists the 66 canonical books with their identifiers, display names, canonical order, and chapter counts.
// @Tags references
// @Produce json
// @Success 200 {object} map[string]interface{} "Books in canonical order"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /v1/references/books [get]
func (h *ReferenceHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	err := h.app.writeJSON(w, http.StatusOK, envelope{"books": scripture.AllBooks}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

package main

import (
	"errors"
	"net/http"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/validator"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type TagHandler struct {
	app *application
}

func NewTagHandler(app *application) *TagHandler {
	return &TagHandler{
		app: app,
	}
}

func (h *TagHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/tags",
		h.app.generalRateLimit(h.List))

	router.HandlerFunc(http.MethodPost, "/v1/tags",
		h.app.generalRateLimit(h.Create))

	router.HandlerFunc(http.MethodGet, "/v1/tags/:name/chapters",
		h.app.generalRateLimit(h.Chapters))

	router.HandlerFunc(http.MethodPost, "/v1/theology/chapters/:chapter/tags/:tagID",
		h.app.generalRateLimit(h.Assign))

	router.HandlerFunc(http.MethodDelete, "/v1/theology/chapters/:chapter/tags/:tagID",
		h.app.generalRateLimit(h.Unassign))
}

// List lists all tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} map[string][]data.Tag "All tags"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.app.models.Tags.GetAll()
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"tags": tags}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

type CreateTagInput struct {
	Name string `json:"name"`
}

// Create creates a tag
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param input body CreateTagInput true "Tag name"
// @Success 201 {object} map[string]data.Tag "Created tag"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Duplicate tag name"
// @Failure 422 {object} map[string]map[string]string "Validation errors"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/tags [post]
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateTagInput
	err := h.app.readJSON(r, &input)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Name != "", "name", "must be provided")
	v.Check(len(input.Name) <= 100, "name", "must not be more than 100 characters long")
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	tag, err := h.app.models.Tags.Insert(input.Name)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateTag):
			h.app.editConflictResponse(w, r, err)
		default:
			h.app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = h.app.writeJSON(w, http.StatusCreated, envelope{"tag": tag}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// Chapters lists the chapters carrying a tag
// @Summary List chapters by tag
// @Tags tags
// @Produce json
// @Param name path string true "Tag name"
// @Success 200 {object} map[string]interface{} "Chapter entries"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/tags/{name}/chapters [get]
func (h *TagHandler) Chapters(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	name := params.ByName("name")

	chapters, err := h.app.models.Tags.ChaptersByTag(name)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"chapters": chapters}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// Assign attaches a tag to a chapter
// @Summary Tag a chapter
// @Tags tags
// @Produce json
// @Param chapter path int true "Chapter number"
// @Param tagID path int true "Tag ID"
// @Success 204 "Tag assigned"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Chapter or tag not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/chapters/{chapter}/tags/{tagID} [post]
func (h *TagHandler) Assign(w http.ResponseWriter, r *http.Request) {
	chapter, tagID, err := h.readTagParams(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	err = h.app.models.Tags.Assign(chapter, tagID)
	if err != nil {
		h.handleTagError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unassign removes a tag from a chapter
// @Summary Untag a chapter
// @Tags tags
// @Produce json
// @Param chapter path int true "Chapter number"
// @Param tagID path int true "Tag ID"
// @Success 204 "Tag removed"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/chapters/{chapter}/tags/{tagID} [delete]
func (h *TagHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	chapter, tagID, err := h.readTagParams(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	err = h.app.models.Tags.Unassign(chapter, tagID)
	if err != nil {
		h.handleTagError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TagHandler) readTagParams(r *http.Request) (int, int64, error) {
	chapter, err := h.app.readChapterParam(r)
	if err != nil {
		return 0, 0, err
	}

	params := httprouter.ParamsFromContext(r.Context())
	tagID, err := strconv.ParseInt(params.ByName("tagID"), 10, 64)
	if err != nil || tagID < 1 {
		return 0, 0, errors.New("invalid tag id parameter")
	}

	return chapter, tagID, nil
}

func (h *TagHandler) handleTagError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, data.ErrRecordNotFound):
		h.app.notFoundResponse(w, r)
	default:
		h.app.serverErrorResponse(w, r, err)
	}
}

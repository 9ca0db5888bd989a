package main

import (
	"errors"
	"net/http"
	"shuvoedward/Theology_project/internal/service"

	"github.com/julienschmidt/httprouter"
)

type ImportHandler struct {
	app     *application
	service *service.ImportService
}

func NewImportHandler(app *application, importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		app:     app,
		service: importService,
	}
}

func (h *ImportHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/v1/theology/import",
		h.app.importRateLimit(h.ImportBatch))
}

type ImportBatchInput struct {
	Records []service.ImportRecord `json:"records"`
}

// ImportBatch imports a batch of corpus records
// @Summary Import a batch of theology records
// @Description Imports parts, chapters, sections, and subsections in one all-or-nothing batch. Records missing required fields are skipped and counted; structural conflicts (duplicate chapter numbers, subsections without a parent section) fail the whole batch and nothing is written. Cited scripture references are parsed and indexed; unparsable references skip only their own index row. Re-importing the same batch is idempotent.
// @Tags import
// @Accept json
// @Produce json
// @Param input body ImportBatchInput true "Records to import"
// @Success 200 {object} map[string]service.ImportSummary "Import summary"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 422 {object} map[string]string "Structural conflict, nothing imported"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/theology/import [post]
func (h *ImportHandler) ImportBatch(w http.ResponseWriter, r *http.Request) {
	var input ImportBatchInput
	err := h.app.readJSON(r, &input)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	summary, err := h.service.ImportBatch(r.Context(), input.Records)
	if err != nil {
		h.handleImportError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"summary": summary}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

func (h *ImportHandler) handleImportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrDuplicateChapter),
		errors.Is(err, service.ErrDuplicateSection),
		errors.Is(err, service.ErrDuplicateSubsection),
		errors.Is(err, service.ErrOrphanSubsection):
		h.app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		h.app.serverErrorResponse(w, r, err)
	}
}

package main

import (
	"errors"
	"net/http"
	"shuvoedward/Theology_project/internal/data"
	"shuvoedward/Theology_project/internal/service"

	"github.com/julienschmidt/httprouter"
)

type LinkHandler struct {
	app     *application
	service *service.LinkService
}

func NewLinkHandler(app *application, linkService *service.LinkService) *LinkHandler {
	return &LinkHandler{
		app:     app,
		service: linkService,
	}
}

func (h *LinkHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/v1/links/resolve",
		h.app.generalRateLimit(h.Resolve))
}

type ResolveLinkInput struct {
	Token       string `json:"token"`
	DisplayText string `json:"display_text"`
}

// Resolve resolves an internal link token
// @Summary Resolve a link token
// @Description Resolves a bracket token (e.g. [[ST:Ch32]], [[ST:Ch32:A]], [[ST:Ch32:A.1]]) against the hierarchy. Resolution is exact: a token naming a missing node yields an unresolved presentation, never a fallback to the nearest ancestor. Malformed tokens fail validation.
// @Tags links
// @Accept json
// @Produce json
// @Param input body ResolveLinkInput true "Token to resolve, with optional display text"
// @Success 200 {object} map[string]interface{} "Presentation, plus the entry when resolved"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 422 {object} map[string]string "Malformed token"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /v1/links/resolve [post]
func (h *LinkHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var input ResolveLinkInput
	err := h.app.readJSON(r, &input)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	entry, _, err := h.service.Resolve(input.Token)
	if err != nil && !errors.Is(err, data.ErrRecordNotFound) {
		switch {
		case errors.Is(err, service.ErrMalformedToken):
			h.app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			h.app.serverErrorResponse(w, r, err)
		}
		return
	}

	presentation, err := h.service.Present(input.Token, input.DisplayText)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	env := envelope{"link": presentation}
	if entry != nil {
		env["entry"] = entry
	}

	err = h.app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

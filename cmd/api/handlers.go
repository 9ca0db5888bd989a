package main

import "shuvoedward/Theology_project/internal/service"

// Handlers contains all HTTP methods
// This is specific to the HTTP API entry point
type Handlers struct {
	Reference *ReferenceHandler
	Theology  *TheologyHandler
	Link      *LinkHandler
	Import    *ImportHandler
	Tag       *TagHandler
}

// NewHandlers creates all HTTP handlers
// Handlers are tied to HTTP - not reusable like services
func NewHandlers(app *application, services *service.Service) *Handlers {
	return &Handlers{
		Reference: NewReferenceHandler(app),
		Theology:  NewTheologyHandler(app, services.Theology),
		Link:      NewLinkHandler(app, services.Link),
		Import:    NewImportHandler(app, services.Import),
		Tag:       NewTagHandler(app),
	}
}

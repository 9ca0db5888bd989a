package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (app *application) routes(handlers *Handlers) http.Handler {
	router := httprouter.New()

	router.RedirectFixedPath = false
	router.RedirectTrailingSlash = false

	handlers.Reference.RegisterRoutes(router)
	handlers.Theology.RegisterRoutes(router)
	handlers.Link.RegisterRoutes(router)
	handlers.Import.RegisterRoutes(router)
	handlers.Tag.RegisterRoutes(router)

	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())
	router.HandlerFunc(http.MethodGet, "/swagger/:any", httpSwagger.WrapHandler)

	return app.metrics(app.recoverPanic(app.enableCORS(router)))
}

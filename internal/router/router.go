// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wrenchworks/autoservice/internal/handler"
	"github.com/wrenchworks/autoservice/internal/middleware"
	"github.com/wrenchworks/autoservice/internal/server"
)

// New builds the Echo instance: global middleware in order, the global
// error handler, system routes and the API route groups.
//
// Middleware order matters:
//  1. New Relic starts the transaction (so everything downstream can
//     attach to it)
//  2. RequestID before the context enhancer (the request-scoped logger
//     includes the id)
//  3. ContextEnhancer before anything that calls GetLogger
func New(s *server.Server, middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middlewares.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Tracing.EnhanceTracing())
	e.Use(middlewares.Global.RequestLogger())
	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.CORS())

	registerSystemRoutes(e, handlers)
	registerAPIRoutes(e, handlers)

	return e
}

// Package router builds the echo instance: middleware order, error handler
// and route registration.
package router

import (
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the application's http.Handler.
//
// Middleware order matters: the request id and the New Relic transaction
// must exist before the request logger is built, and the access log must
// wrap everything that can reject a request (recover, body limit, rate limit).
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.CORS(),
		m.Global.Secure(),
		m.Global.BodyLimit(),
		m.RateLimit.Limiter(),
	)

	registerSystemRoutes(router, h)
	registerPersonRoutes(router, h)

	return router
}

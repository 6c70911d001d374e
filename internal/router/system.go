package router

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Registers the OpenAPI document with swag.
	_ "github.com/deppfellow/person-api/docs"
)

// registerSystemRoutes registers the endpoints that are not part of the API
// itself: liveness and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPIJSON)

	r.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	r.GET("/docs/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/docs/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}

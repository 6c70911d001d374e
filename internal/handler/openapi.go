package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// OpenAPIHandler serves the OpenAPI document registered by the docs package.
//
// The document is served with Cache-Control: no-cache and a strong ETag, so
// clients revalidate on every load and receive 304 Not Modified until the
// document changes.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIJSON writes the registered document, or 304 when the
// If-None-Match header already names its ETag.
func (h *OpenAPIHandler) ServeOpenAPIJSON(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	etag := DocumentETag(doc)

	header := c.Response().Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("ETag", etag)

	if matchesETag(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

// DocumentETag is the quoted hex SHA-256 of doc.
func DocumentETag(doc string) string {
	sum := sha256.Sum256([]byte(doc))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// matchesETag reports whether an If-None-Match value lists etag or "*".
// Weak validators (W/"...") compare by their opaque tag.
func matchesETag(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// Package handler is the HTTP layer between the router and the services.
//
// Every route handler is a typed function run through Handle, which binds
// and validates the request before the handler sees it.
package handler

import (
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Home    *HomeHandler
	Person  *PersonHandler
	Form    *FormHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Person:  NewPersonHandler(s, services.Person),
		Form:    NewFormHandler(s, services.Form),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}

package handler

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Home godoc
//
//	@Summary	Home
//	@Tags		Home
//	@Produce	json
//	@Success	200	{object}	model.Greeting
//	@Router		/ [get]
func (h *HomeHandler) Home(c echo.Context, _ *model.Empty) (model.Greeting, error) {
	return model.Greeting{"Hello": "world"}, nil
}

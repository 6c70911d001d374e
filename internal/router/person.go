package router

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerPersonRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Home.Handler, h.Home.Home, http.StatusOK))

	person := r.Group("/person")
	person.POST("/new", handler.Handle(h.Person.Handler, h.Person.CreatePerson, http.StatusCreated))
	person.GET("/detail", handler.Handle(h.Person.Handler, h.Person.ShowPerson, http.StatusOK))
	person.GET("/detail:person_id", handler.Handle(h.Person.Handler, h.Person.PersonExists, http.StatusOK))
	person.PUT("/:person_id", handler.Handle(h.Person.Handler, h.Person.UpdatePerson, http.StatusOK))
	person.PUT("/location/:person_id", handler.Handle(h.Person.Handler, h.Person.UpdateLocation, http.StatusOK))

	r.POST("/login", handler.Handle(h.Form.Handler, h.Form.Login, http.StatusOK))
	r.POST("/contact", handler.Handle(h.Form.Handler, h.Form.Contact, http.StatusOK))
	r.POST("/post-image", handler.Handle(h.Form.Handler, h.Form.UploadImage, http.StatusOK))
}

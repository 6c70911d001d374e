package handler

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

// CreatePerson godoc
//
//	@Summary		Create person in the app
//	@Description	Echoes the person back without the password. Nothing is stored.
//	@Tags			Persons
//	@Accept			json
//	@Produce		json
//	@Param			person	body		model.Person	true	"Person to create"
//	@Success		201		{object}	model.PersonOut
//	@Failure		400		{object}	errs.HTTPError
//	@Failure		422		{object}	errs.HTTPError
//	@Router			/person/new [post]
func (h *PersonHandler) CreatePerson(c echo.Context, req *model.CreatePersonRequest) (model.PersonOut, error) {
	return h.personService.Create(c.Request().Context(), req.Person), nil
}

// ShowPerson godoc
//
//	@Summary	Show person
//	@Tags		Persons
//	@Produce	json
//	@Param		name	query		string	false	"The name of the person. It's between 1 and 50 characters"	minlength(1)	maxlength(50)
//	@Param		age		query		int		true	"The age of the person. It's required"
//	@Success	200		{object}	map[string]int
//	@Failure	400		{object}	errs.HTTPError
//	@Failure	422		{object}	errs.HTTPError
//	@Router		/person/detail [get]
func (h *PersonHandler) ShowPerson(c echo.Context, req *model.PersonDetailQuery) (map[string]int, error) {
	return h.personService.Detail(c.Request().Context(), *req), nil
}

// PersonExists godoc
//
//	@Summary	Check a person exists
//	@Tags		Persons
//	@Produce	json
//	@Param		person_id	path		int	true	"Person ID"	minimum(1)
//	@Success	200			{object}	map[string]string
//	@Failure	404			{object}	errs.HTTPError
//	@Failure	422			{object}	errs.HTTPError
//	@Router		/person/detail{person_id} [get]
func (h *PersonHandler) PersonExists(c echo.Context, req *model.PersonIDParam) (map[string]string, error) {
	return h.personService.Exists(c.Request().Context(), req.PersonID)
}

// UpdatePerson godoc
//
//	@Summary		Update person
//	@Description	Merges the person and the location into one object.
//	@Tags			Persons
//	@Accept			json
//	@Produce		json
//	@Param			person_id	path		int							true	"Person ID"	minimum(1)
//	@Param			body		body		model.UpdatePersonRequest	true	"Person and location"
//	@Success		200			{object}	model.PersonWithLocation
//	@Failure		400			{object}	errs.HTTPError
//	@Failure		422			{object}	errs.HTTPError
//	@Router			/person/{person_id} [put]
func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.UpdatePersonRequest) (model.PersonWithLocation, error) {
	return h.personService.Update(c.Request().Context(), *req), nil
}

// UpdateLocation godoc
//
//	@Summary	Update a person's location
//	@Tags		Persons
//	@Accept		json
//	@Produce	json
//	@Param		person_id	path		int				true	"Person ID"	minimum(1)
//	@Param		location	body		model.Location	true	"New location"
//	@Success	200			{object}	model.Location
//	@Failure	400			{object}	errs.HTTPError
//	@Failure	422			{object}	errs.HTTPError
//	@Router		/person/location/{person_id} [put]
func (h *PersonHandler) UpdateLocation(c echo.Context, req *model.UpdateLocationRequest) (model.Location, error) {
	return h.personService.UpdateLocation(c.Request().Context(), *req), nil
}

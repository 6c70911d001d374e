package model

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// CreatePersonRequest is the body of POST /person/new.
type CreatePersonRequest struct {
	Person
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// PersonDetailQuery is the query string of GET /person/detail.
//
// Name is optional; Age must be present.
type PersonDetailQuery struct {
	Name *string `query:"name" validate:"omitnil,min=1,max=50" example:"Rocío"`
	Age  *int    `query:"age" validate:"required" example:"25"`
}

// Bind reads the query by hand so a missing key stays nil instead of
// collapsing into a zero value.
func (q *PersonDetailQuery) Bind(c echo.Context) error {
	params := c.QueryParams()

	if params.Has("name") {
		name := params.Get("name")
		q.Name = &name
	}

	if params.Get("age") != "" {
		var age int
		if err := echo.QueryParamsBinder(c).Int("age", &age).BindError(); err != nil {
			return err
		}
		q.Age = &age
	}

	return nil
}

func (q *PersonDetailQuery) Validate() error {
	return validation.Struct(q)
}

var bodyBinder = &echo.DefaultBinder{}

// bindPersonID reads the person_id path parameter. A value that is not an
// integer fails as a *echo.BindingError naming person_id.
func bindPersonID(c echo.Context, dst *int) error {
	return echo.PathParamsBinder(c).Int("person_id", dst).BindError()
}

// PersonIDParam carries the person_id path parameter.
type PersonIDParam struct {
	PersonID int `param:"person_id" json:"-" validate:"gt=0" example:"3"`
}

func (p *PersonIDParam) Bind(c echo.Context) error {
	return bindPersonID(c, &p.PersonID)
}

func (p *PersonIDParam) Validate() error {
	return validation.Struct(p)
}

// UpdatePersonRequest is PUT /person/{person_id}: a person and a location
// in one body.
type UpdatePersonRequest struct {
	PersonID int      `param:"person_id" json:"-" validate:"gt=0"`
	Person   Person   `json:"person"`
	Location Location `json:"location"`
}

func (r *UpdatePersonRequest) Bind(c echo.Context) error {
	if err := bindPersonID(c, &r.PersonID); err != nil {
		return err
	}
	return bodyBinder.BindBody(c, r)
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateLocationRequest is PUT /person/location/{person_id}.
type UpdateLocationRequest struct {
	PersonID int `param:"person_id" json:"-" validate:"gt=0"`
	Location
}

func (r *UpdateLocationRequest) Bind(c echo.Context) error {
	if err := bindPersonID(c, &r.PersonID); err != nil {
		return err
	}
	return bodyBinder.BindBody(c, r)
}

func (r *UpdateLocationRequest) Validate() error {
	return validation.Struct(r)
}

// LoginForm is the urlencoded or multipart body of POST /login.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20" example:"miguel2021"`
	Password string `form:"password" validate:"required" example:"secret"`
}

func (f *LoginForm) Validate() error {
	return validation.Struct(f)
}

// UserAgentHeader is the header echoed back by the contact form.
const UserAgentHeader = "User-Agent"

// ContactForm is POST /contact: form fields plus an optional User-Agent
// header and an optional ads cookie.
type ContactForm struct {
	FirstName string  `form:"first_name" validate:"min=1,max=20" example:"Azkur"`
	LastName  string  `form:"last_name" validate:"min=1,max=20" example:"Dev"`
	Email     string  `form:"email" validate:"required,email" example:"azkur.zone@gmail.com"`
	Message   string  `form:"message" validate:"min=20" example:"I would like to know more about the API."`
	UserAgent *string `header:"User-Agent" json:"-"`
	Ads       *string `cookie:"ads" json:"-"`
}

func (f *ContactForm) Bind(c echo.Context) error {
	if err := c.Bind(f); err != nil {
		return err
	}

	f.UserAgent = nil
	if values := c.Request().Header.Values(UserAgentHeader); len(values) > 0 {
		userAgent := values[0]
		f.UserAgent = &userAgent
	}

	f.Ads = nil
	if cookie, err := c.Cookie("ads"); err == nil {
		ads := cookie.Value
		f.Ads = &ads
	}

	return nil
}

func (f *ContactForm) Validate() error {
	return validation.Struct(f)
}

// UploadImageRequest is the multipart body of POST /post-image.
type UploadImageRequest struct {
	Image *multipart.FileHeader `form:"image" validate:"required"`
}

// Bind leaves Image nil when the part is missing so validation reports it.
func (r *UploadImageRequest) Bind(c echo.Context) error {
	file, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return nil
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	r.Image = file
	return nil
}

func (r *UploadImageRequest) Validate() error {
	return validation.Struct(r)
}

var (
	_ validation.Binder = (*PersonIDParam)(nil)
	_ validation.Binder = (*UpdatePersonRequest)(nil)
	_ validation.Binder = (*UpdateLocationRequest)(nil)
	_ validation.Binder = (*PersonDetailQuery)(nil)
	_ validation.Binder = (*ContactForm)(nil)
	_ validation.Binder = (*UploadImageRequest)(nil)
)

package handler

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/labstack/echo/v4"
)

type FormHandler struct {
	Handler
	formService *service.FormService
}

func NewFormHandler(s *server.Server, formService *service.FormService) *FormHandler {
	return &FormHandler{
		Handler:     NewHandler(s),
		formService: formService,
	}
}

// Login godoc
//
//	@Summary	Login
//	@Tags		Persons
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		username	formData	string	true	"Username"	maxlength(20)
//	@Param		password	formData	string	true	"Password"
//	@Success	200			{object}	model.LoginOut
//	@Failure	422			{object}	errs.HTTPError
//	@Router		/login [post]
func (h *FormHandler) Login(c echo.Context, req *model.LoginForm) (model.LoginOut, error) {
	return h.formService.Login(c.Request().Context(), *req), nil
}

// Contact godoc
//
//	@Summary	Contact
//	@Tags		Forms
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		first_name	formData	string	true	"First name"	minlength(1)	maxlength(20)
//	@Param		last_name	formData	string	true	"Last name"		minlength(1)	maxlength(20)
//	@Param		email		formData	string	true	"Email"
//	@Param		message		formData	string	true	"Message"	minlength(20)
//	@Param		User-Agent	header		string	false	"User agent"
//	@Success	200			{string}	string	"The caller's User-Agent, or null"
//	@Failure	422			{object}	errs.HTTPError
//	@Router		/contact [post]
func (h *FormHandler) Contact(c echo.Context, req *model.ContactForm) (*string, error) {
	return h.formService.Contact(c.Request().Context(), *req), nil
}

// UploadImage godoc
//
//	@Summary	Upload an image
//	@Tags		Files
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		image	formData	file	true	"Image to measure"
//	@Success	200		{object}	model.ImageOut
//	@Failure	400		{object}	errs.HTTPError
//	@Failure	413		{object}	errs.HTTPError
//	@Failure	422		{object}	errs.HTTPError
//	@Router		/post-image [post]
func (h *FormHandler) UploadImage(c echo.Context, req *model.UploadImageRequest) (model.ImageOut, error) {
	return h.formService.DescribeImage(c.Request().Context(), req.Image)
}

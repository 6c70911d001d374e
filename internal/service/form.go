package service

import (
	"context"
	"errors"
	"math"
	"mime/multipart"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// FormService handles the form and upload endpoints. No credential is
// checked and no file is kept.
type FormService struct {
	server *server.Server
}

func NewFormService(s *server.Server) *FormService {
	return &FormService{server: s}
}

// Login accepts any username and password.
func (s *FormService) Login(ctx context.Context, form model.LoginForm) model.LoginOut {
	zerolog.Ctx(ctx).Info().Str("username", form.Username).Msg("login")

	return model.LoginOut{
		Username: form.Username,
		Message:  model.LoginMessage,
	}
}

// Contact returns the caller's User-Agent, nil when the header was absent.
func (s *FormService) Contact(ctx context.Context, form model.ContactForm) *string {
	zerolog.Ctx(ctx).Info().
		Str("email", form.Email).
		Bool("ads", form.Ads != nil).
		Msg("contact message received")

	return form.UserAgent
}

// DescribeImage reports the name, content type and size of an upload
// without keeping it.
func (s *FormService) DescribeImage(ctx context.Context, image *multipart.FileHeader) (model.ImageOut, error) {
	if image == nil {
		return model.ImageOut{}, errors.New("no image to describe")
	}

	out := model.ImageOut{
		Filename: image.Filename,
		Format:   image.Header.Get(echo.HeaderContentType),
		SizeKB:   KiloBytes(image.Size),
	}

	zerolog.Ctx(ctx).Debug().
		Str("filename", out.Filename).
		Int64("bytes", image.Size).
		Msg("image measured")

	return out, nil
}

// KiloBytes converts a byte count into kilobytes rounded to two decimals.
func KiloBytes(size int64) float64 {
	return math.Round(float64(size)/1024*100) / 100
}

package service

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPersonService_Exists(t *testing.T) {
	svc := NewPersonService(nil, repository.NewPersonRepository())

	got, err := svc.Exists(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"3": "It exists!"}, got)

	_, err = svc.Exists(context.Background(), 99)
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, PersonNotFoundMessage, httpErr.Message)
}

func TestPersonService_Detail(t *testing.T) {
	svc := NewPersonService(nil, repository.NewPersonRepository())

	assert.Equal(t, map[string]int{"Rocío": 25},
		svc.Detail(context.Background(), model.PersonDetailQuery{Name: ptr("Rocío"), Age: ptr(25)}))
	assert.Equal(t, map[string]int{"null": 25},
		svc.Detail(context.Background(), model.PersonDetailQuery{Age: ptr(25)}))
}

func TestPersonService_UpdateMergesPersonAndLocation(t *testing.T) {
	svc := NewPersonService(nil, repository.NewPersonRepository())

	req := model.UpdatePersonRequest{
		PersonID: 1,
		Person: model.Person{
			PersonBase: model.PersonBase{FirstName: "Azkur", Age: 38},
			Password:   "123454678",
		},
		Location: model.Location{City: "Campeche", State: "Campeche", Country: "Mexico"},
	}

	got := svc.Update(context.Background(), req)
	assert.Equal(t, "Azkur", got.FirstName)
	assert.Equal(t, "123454678", got.Password)
	assert.Equal(t, "Mexico", got.Country)

	loc := svc.UpdateLocation(context.Background(), model.UpdateLocationRequest{PersonID: 1, Location: req.Location})
	assert.Equal(t, req.Location, loc)
}

func TestFormService_Login(t *testing.T) {
	svc := NewFormService(nil)

	got := svc.Login(context.Background(), model.LoginForm{Username: "miguel2021", Password: "anything"})
	assert.Equal(t, model.LoginOut{Username: "miguel2021", Message: "Login Successfully!"}, got)
}

func TestFormService_Contact(t *testing.T) {
	svc := NewFormService(nil)

	assert.Nil(t, svc.Contact(context.Background(), model.ContactForm{}))
	assert.Equal(t, "curl/8.0", *svc.Contact(context.Background(), model.ContactForm{UserAgent: ptr("curl/8.0")}))
}

func TestFormService_DescribeImage(t *testing.T) {
	svc := NewFormService(nil)

	header := &multipart.FileHeader{
		Filename: "avatar.png",
		Header:   textproto.MIMEHeader{"Content-Type": {"image/png"}},
		Size:     2048,
	}

	got, err := svc.DescribeImage(context.Background(), header)
	require.NoError(t, err)
	assert.Equal(t, model.ImageOut{Filename: "avatar.png", Format: "image/png", SizeKB: 2}, got)

	_, err = svc.DescribeImage(context.Background(), nil)
	assert.Error(t, err)
}

func TestKiloBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  float64
	}{
		{0, 0},
		{1024, 1},
		{2048, 2},
		{1536, 1.5},
		{1000, 0.98},
		{123456, 120.56},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KiloBytes(tt.bytes), "%d bytes", tt.bytes)
	}
}

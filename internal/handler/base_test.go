package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type echoRequest struct {
	Word  string `json:"word" validate:"required,max=5"`
	Extra string `json:"extra"`
}

func (r *echoRequest) Validate() error {
	return validation.Struct(r)
}

func newTestHandler(t *testing.T) Handler {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)
	return NewHandler(s)
}

func call(h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h(echo.New().NewContext(req, rec))
	return rec, err
}

func TestHandle_FreshRequestPerCall(t *testing.T) {
	h := newTestHandler(t)

	var seen []echoRequest
	route := Handle(h, func(c echo.Context, req *echoRequest) (map[string]string, error) {
		seen = append(seen, *req)
		return map[string]string{"word": req.Word}, nil
	}, http.StatusCreated)

	rec, err := call(route, `{"word":"hi","extra":"first"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"word":"hi"}`, rec.Body.String())

	_, err = call(route, `{"word":"yo"}`)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "first", seen[0].Extra)
	assert.Empty(t, seen[1].Extra, "values must not leak between requests")
}

func TestHandle_ValidationStopsHandler(t *testing.T) {
	h := newTestHandler(t)

	called := false
	route := Handle(h, func(c echo.Context, req *echoRequest) (string, error) {
		called = true
		return "", nil
	}, http.StatusOK)

	_, err := call(route, `{"word":"too long"}`)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.False(t, called)
}

func TestHandle_HandlerError(t *testing.T) {
	h := newTestHandler(t)

	notFound := errs.NewNotFoundError("gone", true, nil)
	route := Handle(h, func(c echo.Context, req *echoRequest) (string, error) {
		return "", notFound
	}, http.StatusOK)

	rec, err := call(route, `{"word":"hi"}`)
	assert.Same(t, notFound, err)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_LoggerFallback(t *testing.T) {
	var serverOut bytes.Buffer
	logger := zerolog.New(&serverOut)
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	route := Handle(NewHandler(s), func(c echo.Context, req *echoRequest) (string, error) {
		return req.Word, nil
	}, http.StatusOK)

	_, err = call(route, `{"word":"hi"}`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(serverOut.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "handling request", gjson.Get(lines[0], "message").String())
	assert.Equal(t, "handler", gjson.Get(lines[0], "operation").String())

	serverOut.Reset()

	var requestOut bytes.Buffer
	requestLogger := zerolog.New(&requestOut)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"word":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.Set(middleware.LoggerKey, &requestLogger)

	require.NoError(t, route(c))
	assert.Empty(t, serverOut.String())
	assert.Contains(t, requestOut.String(), "handling request")
}

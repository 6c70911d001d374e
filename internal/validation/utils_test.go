package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Street string `json:"street" validate:"required,max=10"`
}

type Embedded struct {
	Nickname string `json:"nickname" validate:"required"`
}

type signupRequest struct {
	Embedded
	ID      int      `param:"id" json:"-" validate:"gt=0"`
	Email   string   `json:"email" validate:"required,email"`
	Age     int      `json:"age" validate:"required,gt=18,lte=115"`
	Site    *string  `json:"site" validate:"omitnil,http_url"`
	Color   *string  `json:"color" validate:"omitnil,oneof=red blue"`
	Address address  `json:"address"`
	Plain   string   `validate:"max=3"`
	Tags    []string `json:"tags"`
}

func (r *signupRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	fail bool
}

func (r *customRequest) Validate() error {
	if r.fail {
		return CustomValidationErrors{{Field: "window", Message: "must end after it starts"}}
	}
	return nil
}

type boundRequest struct {
	Token string `header:"X-Token" validate:"required"`
	err   error
}

func (r *boundRequest) Bind(c echo.Context) error {
	if r.err != nil {
		return r.err
	}
	r.Token = c.Request().Header.Get("X-Token")
	return nil
}

func (r *boundRequest) Validate() error {
	return Struct(r)
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/signup/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/signup/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func fieldMap(t *testing.T, err error) (*errs.HTTPError, map[string]string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)

	fields := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	return httpErr, fields
}

const validBody = `{"nickname":"az","email":"a@b.co","age":19,"address":{"street":"Main"}}`

func TestBindAndValidate_Success(t *testing.T) {
	c := newContext(http.MethodPut, validBody)

	req := &signupRequest{}
	require.NoError(t, BindAndValidate(c, req))

	assert.Equal(t, 7, req.ID)
	assert.Equal(t, "az", req.Nickname)
	assert.Equal(t, 19, req.Age)
	assert.Nil(t, req.Site)
}

func TestBindAndValidate_ConstraintFailures(t *testing.T) {
	body := `{"email":"not-an-email","age":18,"site":"ftp//nope","color":"green","address":{"street":"Eleven chars"},"Plain":"long"}`
	c := newContext(http.MethodPut, body)

	httpErr, fields := fieldMap(t, BindAndValidate(c, &signupRequest{}))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", httpErr.Code)
	assert.Equal(t, "Validation failed", httpErr.Message)

	assert.Equal(t, "is required", fields["nickname"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be greater than 18", fields["age"])
	assert.Equal(t, "must be a valid URL", fields["site"])
	assert.Equal(t, "must be one of: red, blue", fields["color"])
	assert.Equal(t, "must not exceed 10 characters", fields["address.street"])
	assert.Equal(t, "must not exceed 3 characters", fields["plain"])
}

func TestBindAndValidate_AgeBounds(t *testing.T) {
	tests := []struct {
		age     string
		wantErr string
	}{
		{"18", "must be greater than 18"},
		{"19", ""},
		{"115", ""},
		{"116", "must be at most 115"},
	}

	for _, tt := range tests {
		t.Run(tt.age, func(t *testing.T) {
			body := strings.Replace(validBody, `"age":19`, `"age":`+tt.age, 1)
			err := BindAndValidate(newContext(http.MethodPut, body), &signupRequest{})

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			_, fields := fieldMap(t, err)
			assert.Equal(t, tt.wantErr, fields["age"])
		})
	}
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	httpErr, fields := fieldMap(t, BindAndValidate(newContext(http.MethodPut, `{"email":`), &signupRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, fields)
}

func TestBindAndValidate_TypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
		error   string
	}{
		{"top level", `{"age":"old"}`, "age", "Invalid Age", "must be of type integer"},
		{"embedded", `{"nickname":5}`, "nickname", "Invalid Nickname", "must be of type string"},
		{"nested", `{"address":{"street":true}}`, "address.street", "Invalid Address Street", "must be of type string"},
		{"pointer", `{"site":[]}`, "site", "Invalid Site", "must be of type string"},
		{"whole body", `[1]`, "body", "Invalid Body", "must be of type object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr, fields := fieldMap(t, BindAndValidate(newContext(http.MethodPut, tt.body), &signupRequest{}))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.error, fields[tt.field])
		})
	}
}

func TestBindAndValidate_BadPathParam(t *testing.T) {
	c := newContext(http.MethodPut, validBody)
	c.SetParamValues("abc")

	httpErr, _ := fieldMap(t, BindAndValidate(c, &signupRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, `Invalid value "abc"`, httpErr.Message)
	assert.NotContains(t, httpErr.Message, "strconv")
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://www.azkur.com", true},
		{"http://example.org/path?q=1", true},
		{"http://127.0.0.1:8080", true},
		{"http://localhost", false},
		{"http://intranet:8080/", false},
		{"ftp://example.org", false},
		{"example.org", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := Validator().Var(tt.url, PublicURLTag)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{}`)

	httpErr, fields := fieldMap(t, BindAndValidate(c, &customRequest{fail: true}))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "must end after it starts", fields["window"])

	assert.NoError(t, BindAndValidate(newContext(http.MethodPost, `{}`), &customRequest{}))
}

func TestBindAndValidate_Binder(t *testing.T) {
	c := newContext(http.MethodPost, "")
	c.Request().Header.Set("X-Token", "abc")

	req := &boundRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "abc", req.Token)

	_, fields := fieldMap(t, BindAndValidate(newContext(http.MethodPost, ""), &boundRequest{}))
	assert.Equal(t, "is required", fields["X-Token"])
}

func TestBindAndValidate_BinderErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{
			name:   "binding error keeps the field",
			err:    echo.NewBindingError("age", []string{"x"}, "failed to bind field value to int", nil),
			status: http.StatusBadRequest,
			field:  "age",
		},
		{
			name:   "body too large",
			err:    echo.ErrStatusRequestEntityTooLarge,
			status: http.StatusRequestEntityTooLarge,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr, fields := fieldMap(t, BindAndValidate(newContext(http.MethodPost, ""), &boundRequest{err: tt.err}))
			assert.Equal(t, tt.status, httpErr.Status)
			if tt.field != "" {
				assert.Equal(t, "failed to bind field value to int", fields[tt.field])
			}
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Person Id", Label("person_id"))
	assert.Equal(t, "User Agent", Label("User-Agent"))
	assert.Equal(t, "Person First Name", Label("person.first_name"))
	assert.Equal(t, "request", Label(""))
	assert.Equal(t, "Body", Label("body"))
}

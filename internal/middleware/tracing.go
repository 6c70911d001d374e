package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/person-api/internal/server"
)

// PersonIDParam is the path parameter naming a person on /person routes.
const PersonIDParam = "person_id"

// TracingMiddleware owns the New Relic echo middleware.
//
// It has two layers:
//  1. NewRelicMiddleware() -> one transaction per request
//  2. EnhanceTracing()     -> request and person attributes, noticed errors
//
// nrApp is nil when New Relic is disabled; both layers then pass requests through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request and stores it on the
// request context, where newrelic.FromContext finds it.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds RequestAttributes to the transaction, notices the
// returned error and records the final status. It must run after
// NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			for key, value := range tm.RequestAttributes(c) {
				txn.AddAttribute(key, value)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// RequestAttributes returns the custom transaction attributes of a request:
//   - http.real_ip, http.user_agent, http.route
//   - service.environment
//   - request.id when RequestID ran
//   - person.id (raw path value) when the route has a person_id parameter
func (tm *TracingMiddleware) RequestAttributes(c echo.Context) map[string]any {
	attrs := map[string]any{
		"http.real_ip":        c.RealIP(),
		"http.user_agent":     c.Request().UserAgent(),
		"http.route":          c.Path(),
		"service.environment": tm.server.Config.Primary.Env,
	}

	if requestID := GetRequestID(c); requestID != "" {
		attrs["request.id"] = requestID
	}

	if personID := c.Param(PersonIDParam); personID != "" {
		attrs["person.id"] = personID
	}

	return attrs
}

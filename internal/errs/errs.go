// Package errs defines the error values handlers return to clients.
//
// Every non-2xx response of the API is an *HTTPError serialized as JSON, so
// clients always receive the same shape: a machine code, a human message,
// the HTTP status and, for validation failures, one entry per bad field.
package errs

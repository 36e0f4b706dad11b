// Package handler turns HTTP requests into service calls.
//
// Every route is backed by a typed request struct; the generic
// pipeline in base.go binds and validates it before the handler method
// runs, so the methods only shape input for the service layer and its
// result for the response body.
package handler

// Package errs defines the error types returned to API clients.
//
// Every error that leaves the service is shaped as an HTTPError so
// clients receive a consistent code/message/status envelope, with
// optional field-level detail for validation failures.
package errs

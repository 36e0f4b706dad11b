// Package validation binds and validates request data.
//
// It uses the validator library to enforce rules defined in struct tags
// and extracts failures into field-level errors the client can act on.
package validation

// Package sqlerr converts low-level PostgreSQL errors into the
// application's HTTPError shapes, so constraint violations surface to
// clients as actionable 4xx responses instead of opaque 500s.
package sqlerr

// Package service holds the business rules between the handlers and
// the repositories: reference checks before order writes, defaulting,
// filter coercion and sort resolution against the field registries,
// and report shaping.
package service

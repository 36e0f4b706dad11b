// Package domain holds the entities of the repair shop (cars, mechanics,
// work orders) and the types that make dynamic querying safe: a closed
// per-entity field registry, sort resolution, and filter coercion.
//
// Nothing in this package touches the database; it produces validated
// building blocks the repository layer assembles into SQL.
package domain

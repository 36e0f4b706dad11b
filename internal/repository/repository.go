// Package repository handles all interactions with the database.
//
// It contains the SQL and the row mapping for cars, mechanics, and
// orders, plus the analytics queries (filtered listing, detail listing,
// revenue aggregation, meta pattern search, and the overdue bulk
// transition). Query text is assembled only from the closed field
// registry in the domain package and positional arguments; no request
// string ever reaches SQL directly.
package repository

// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx driver, and embeds the goose migrations
// that create the schema those stores expect.
package postgres

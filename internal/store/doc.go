// Package store defines the persistence interfaces for users, projects and
// tasks, plus the shared error values and transaction helper used by every
// implementation. Services depend on these interfaces only; the Postgres
// implementations live in internal/platform/postgres.
package store

// Package api handles incoming HTTP requests for authentication, projects,
// tasks and schedules. Handlers decode and validate JSON, call the service
// layer with the authenticated user's ID, and map service errors to status
// codes and client-safe messages.
package api

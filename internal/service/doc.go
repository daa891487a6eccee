// Package service contains the application use cases. Services orchestrate
// domain entities and the repositories defined in internal/store, apply
// transactional boundaries, and enforce ownership.
//
// Key components:
//
//   - UserService: registration and credential checks
//   - ProjectService: project CRUD with task aggregation
//   - TaskService: task CRUD inside owned projects
//   - ScheduleService: runs the deadline-first scheduler over a project's tasks
//
// Every project and task operation is scoped to the calling user. A resource
// owned by someone else is reported with the same not-found error as a
// missing one, so callers cannot probe for foreign IDs.
package service

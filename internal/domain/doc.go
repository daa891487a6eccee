// Package domain contains the core business entities of the planner: users,
// the projects they own and the dated, estimated tasks inside each project.
// Constructors and Validate methods enforce the field rules, so a Task that
// passes validation is always fit for the scheduler in domain/schedule.
package domain

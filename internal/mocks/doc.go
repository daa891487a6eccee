// Package mocks provides shared test doubles for the store interfaces and
// the auth services.
//
// Store mocks are built on testify/mock so tests can assert on calls:
//
//	projects := &mocks.MockProjectStore{}
//	projects.On("GetByID", mock.Anything, id).Return(project, nil)
//
// MockJWTService and MockPasswordHasher use function fields with
// default return values, which keeps table-driven handler tests short.
package mocks

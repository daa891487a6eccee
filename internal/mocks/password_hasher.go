package mocks

import (
	"errors"

	"github.com/phrazzld/planner-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher and auth.PasswordVerifier.
// Without overrides it "hashes" by prefixing and compares accordingly.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// MockHashPrefix is prepended to passwords by the default Hash.
const MockHashPrefix = "hashed:"

// Hash implements auth.PasswordHasher
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return MockHashPrefix + password, nil
}

// Compare implements auth.PasswordVerifier
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != MockHashPrefix+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}

// ErrMockHash is a convenience failure for HashFn.
var ErrMockHash = errors.New("mock hash failure")

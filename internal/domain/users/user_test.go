//go:build unit
// +build unit

package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name          string
		user          User
		expectedError bool
	}{
		{
			name:          "valid user",
			user:          User{Name: "Alice", Email: "alice@example.com"},
			expectedError: false,
		},
		{
			name:          "missing name",
			user:          User{Email: "alice@example.com"},
			expectedError: true,
		},
		{
			name:          "missing email",
			user:          User{Name: "Alice"},
			expectedError: true,
		},
		{
			name:          "name too long",
			user:          User{Name: strings.Repeat("a", 256), Email: "alice@example.com"},
			expectedError: true,
		},
		{
			name:          "email too long",
			user:          User{Name: "Alice", Email: strings.Repeat("a", 256)},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected a validation error")
			} else {
				assert.NoError(t, err, "expected no validation error")
			}
		})
	}
}

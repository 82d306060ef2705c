// Package users defines the user entity and the service and repository
// contracts around it. Callers should use errors.Is to match the sentinel
// errors declared here.
package users

import "errors"

// ErrNotFound is returned when an id does not refer to an existing user.
var ErrNotFound = errors.New("user not found")

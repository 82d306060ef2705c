package v1

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UserRequest is the JSON body for creating and updating users
type UserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,min=1,max=255"`
}

// Validate checks that both fields are present and non-empty
func (r *UserRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// UserResponse is the JSON representation of a user record
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserCreatedResponse is returned after a successful user creation
type UserCreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// FileUploadedResponse is returned after a successful file upload
type FileUploadedResponse struct {
	Message string `json:"message"`
	FileID  uint   `json:"file_id"`
}

// InfoResponse carries a human-readable success message
type InfoResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable error message
type ErrorResponse struct {
	Error string `json:"error"`
}

package files

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// FileMeta entity. One row is created per successful upload; rows are never
// updated or deleted afterwards. UserID is the optional, caller-supplied
// owner; when set it must refer to an existing user at insert time.
type FileMeta struct {
	ID         uint
	Filename   string `validate:"required,min=1,max=255"`
	FileSize   int64  `validate:"gte=0"`
	FileType   string `validate:"required,min=1,max=100"`
	UploadedAt time.Time
	UserID     *uint
}

// Validate for validating FileMeta struct
func (f *FileMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(f)
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

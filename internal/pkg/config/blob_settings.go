package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BlobConnectorSettings holds configuration settings for the blob storage
// account and the single container all blobs live in. ServiceURL is optional
// and overrides the URL derived from the account name (used for emulators
// such as Azurite).
type BlobConnectorSettings struct {
	CloudProvider string `mapstructure:"cloud_provider" validate:"required"`
	AccountName   string `mapstructure:"account_name" validate:"required"`
	AccountKey    string `mapstructure:"account_key" validate:"required"`
	ContainerName string `mapstructure:"container_name" validate:"required"`
	ServiceURL    string `mapstructure:"service_url"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}

	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds connection settings for the relational store. For
// postgres the discrete fields are assembled into a keyword DSN; for sqlite
// only Path is used (empty means in-memory).
type DatabaseSettings struct {
	Type     string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType {
		if s.Host == "" {
			return fmt.Errorf("host is required for postgres")
		}
		if s.User == "" {
			return fmt.Errorf("user is required for postgres")
		}
		if s.Name == "" {
			return fmt.Errorf("name is required for postgres")
		}
	}

	return nil
}

// DSN assembles the postgres keyword/value connection string without a
// database name, so the connection layer can ensure the database exists
// before reconnecting to it.
func (s *DatabaseSettings) DSN() string {
	parts := []string{
		"host=" + s.Host,
		"user=" + s.User,
	}
	if s.Password != "" {
		parts = append(parts, "password="+s.Password)
	}
	if s.Port != "" {
		parts = append(parts, "port="+s.Port)
	}
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}
	parts = append(parts, "sslmode="+sslMode)

	return strings.Join(parts, " ")
}

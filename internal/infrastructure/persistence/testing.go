//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"user_file_service/internal/domain/files"
	"user_file_service/internal/domain/users"
	"user_file_service/internal/infrastructure/persistence/models"
	"user_file_service/internal/pkg/config"
	"user_file_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB       *gorm.DB
	UserRepo users.UserRepository
	FileRepo files.FileRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			// Foreign keys are off by default in SQLite
			Path: ":memory:?_foreign_keys=on",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:     config.PostgresDbType,
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Name:     uniqueDBName,
			SSLMode:  "disable",
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.UserModel{}, &models.FileModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	fileRepo, err := NewGormFileRepository(db, logger)
	require.NoError(t, err, "Failed to create file repository")

	return &TestContext{
		DB:       db,
		UserRepo: userRepo,
		FileRepo: fileRepo,
	}
}

// CreateTestUser persists a user with a unique email and returns it
func CreateTestUser(t *testing.T, tc *TestContext, name string) *users.User {
	t.Helper()

	user := &users.User{
		Name:  name,
		Email: name + "-" + uuid.NewString()[:8] + "@example.com",
	}
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))
	return user
}

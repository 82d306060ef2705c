//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"user_file_service/internal/domain/files"
	"user_file_service/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of users.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) List(ctx context.Context) ([]*users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

// MockFileUploadService is a mock implementation of files.FileUploadService
type MockFileUploadService struct {
	mock.Mock
}

func (m *MockFileUploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, userID *uint) (*files.FileMeta, error) {
	args := m.Called(ctx, fileHeader, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*files.FileMeta), args.Error(1)
}

// MockFileDownloadService is a mock implementation of files.FileDownloadService
type MockFileDownloadService struct {
	mock.Mock
}

func (m *MockFileDownloadService) Download(ctx context.Context, filename string, userID *uint) (*files.FileMeta, []byte, error) {
	args := m.Called(ctx, filename, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*files.FileMeta), args.Get(1).([]byte), args.Error(2)
}

//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"user_file_service/internal/domain/users"
	"user_file_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*users.User).ID = 1
	}).Return(nil)

	user, err := service.Create(context.Background(), &users.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_StoreError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate email"))

	_, err = service.Create(context.Background(), &users.User{Name: "Ann", Email: "ann@x.com"})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	mockRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, users.ErrNotFound)

	err = service.Update(context.Background(), &users.User{ID: 42, Name: "Ann", Email: "ann@x.com"})
	assert.True(t, errors.Is(err, users.ErrNotFound))

	// The existence check failed, so no update must be attempted
	mockRepo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestUserService_Update_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	existing := &users.User{ID: 1, Name: "Ann", Email: "ann@x.com"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(existing, nil)
	mockRepo.On("UpdateByID", mock.Anything, mock.Anything).Return(nil)

	err = service.Update(context.Background(), &users.User{ID: 1, Name: "Anna", Email: "anna@x.com"})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteByID_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	mockRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, users.ErrNotFound)

	err = service.DeleteByID(context.Background(), 42)
	assert.True(t, errors.Is(err, users.ErrNotFound))
	mockRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestUserService_DeleteByID_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	existing := &users.User{ID: 1, Name: "Ann", Email: "ann@x.com"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(existing, nil)
	mockRepo.On("DeleteByID", mock.Anything, uint(1)).Return(nil)

	err = service.DeleteByID(context.Background(), 1)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_List_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service, err := NewUserService(mockRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	expected := []*users.User{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bob", Email: "bob@x.com"},
	}
	mockRepo.On("List", mock.Anything).Return(expected, nil)

	got, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	mockRepo.AssertExpectations(t)
}

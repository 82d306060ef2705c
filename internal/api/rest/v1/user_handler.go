package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"user_file_service/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user CRUD operations
type UserHandler interface {
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	List(ctx *gin.Context)
}

// userHandler struct holds the services
type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// Create creates a user from a JSON body with name and email
func (handler *userHandler) Create(ctx *gin.Context) {
	var request UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	user, err := handler.userService.Create(reqCtx, &users.User{
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, UserCreatedResponse{
		ID:      user.ID,
		Message: "User created successfully",
	})
}

// GetByID fetches a user by id
func (handler *userHandler) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	user, err := handler.userService.GetByID(reqCtx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("user with id %d not found", id)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// UpdateByID updates a user's name and email by id
func (handler *userHandler) UpdateByID(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	var request UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	err = handler.userService.Update(reqCtx, &users.User{
		ID:    id,
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("user with id %d not found", id)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "User updated successfully"})
}

// DeleteByID deletes a user by id
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	if err := handler.userService.DeleteByID(reqCtx, id); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("user with id %d not found", id)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "User deleted successfully"})
}

// List fetches all users
func (handler *userHandler) List(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	userList, err := handler.userService.List(reqCtx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	listResponse := []UserResponse{}
	for _, user := range userList {
		listResponse = append(listResponse, UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// parseID parses a decimal path parameter into a user id
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return uint(id), nil
}

package v1

import (
	"user_file_service/internal/domain/files"
	"user_file_service/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	userService users.UserService,
	fileUploadService files.FileUploadService,
	fileDownloadService files.FileDownloadService) {

	root := r.Group(BasePath)

	// User Routes
	userHandler := NewUserHandler(userService)
	root.POST("/user", userHandler.Create)
	root.GET("/user/:id", userHandler.GetByID)
	root.PUT("/user/:id", userHandler.UpdateByID)
	root.DELETE("/user/:id", userHandler.DeleteByID)
	root.GET("/users", userHandler.List)

	// File Routes
	fileHandler := NewFileHandler(fileUploadService, fileDownloadService)
	root.POST("/upload", fileHandler.Upload)
	root.GET("/download/:filename", fileHandler.Download)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"user_file_service/internal/domain/files"

	"github.com/gin-gonic/gin"
)

// FileHandler defines the interface for handling file upload and download
type FileHandler interface {
	Upload(ctx *gin.Context)
	Download(ctx *gin.Context)
}

// fileHandler struct holds the services
type fileHandler struct {
	fileUploadService   files.FileUploadService
	fileDownloadService files.FileDownloadService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileUploadService files.FileUploadService, fileDownloadService files.FileDownloadService) FileHandler {
	return &fileHandler{
		fileUploadService:   fileUploadService,
		fileDownloadService: fileDownloadService,
	}
}

// Upload uploads a file to blob storage and records its metadata. The blob
// write runs before the metadata insert; the optional user_id form field is
// recorded as the owner without being checked against users beforehand (the
// foreign key does that at insert time).
func (handler *fileHandler) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}

	var userID *uint
	if rawUserID := ctx.PostForm("user_id"); rawUserID != "" {
		id, err := parseID(rawUserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid user_id %q", rawUserID)})
			return
		}
		userID = &id
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	meta, err := handler.fileUploadService.Upload(reqCtx, fileHeader, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, FileUploadedResponse{
		Message: "File uploaded successfully",
		FileID:  meta.ID,
	})
}

// Download streams a file back as an attachment. The metadata/ownership check
// runs before any blob-store call.
func (handler *fileHandler) Download(ctx *gin.Context) {
	filename := ctx.Param("filename")

	var userID *uint
	if rawUserID := ctx.Query("user_id"); rawUserID != "" {
		id, err := parseID(rawUserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid user_id %q", rawUserID)})
			return
		}
		userID = &id
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), RequestTimeout)
	defer cancel()

	meta, data, err := handler.fileDownloadService.Download(reqCtx, filename, userID)
	if err != nil {
		switch {
		case errors.Is(err, files.ErrAccessDenied):
			ctx.JSON(http.StatusForbidden, ErrorResponse{Error: fmt.Sprintf("access to file %s denied", filename)})
		case errors.Is(err, files.ErrBlobNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("file %s not found", filename)})
		default:
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+meta.Filename)
	ctx.Data(http.StatusOK, "application/octet-stream", data)
}

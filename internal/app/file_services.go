package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"user_file_service/internal/domain/files"
	"user_file_service/internal/pkg/logger"
)

// fileUploadService implements the files.FileUploadService interface
type fileUploadService struct {
	blobConnector  files.BlobConnector
	fileRepository files.FileRepository
	logger         logger.Logger
}

// NewFileUploadService creates a new instance of FileUploadService
func NewFileUploadService(blobConnector files.BlobConnector, fileRepository files.FileRepository, logger logger.Logger) (files.FileUploadService, error) {
	return &fileUploadService{
		blobConnector:  blobConnector,
		fileRepository: fileRepository,
		logger:         logger,
	}, nil
}

// Upload writes the file's bytes to blob storage under the original filename
// and then records a metadata row. The blob write happens first; when the
// metadata insert fails afterwards the blob is left orphaned in the container,
// it is logged but not compensated.
func (s *fileUploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, userID *uint) (*files.FileMeta, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %s: %w", fileHeader.Filename, err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %s: %w", fileHeader.Filename, err)
	}

	if err := s.blobConnector.Upload(ctx, fileHeader.Filename, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to upload blob %s: %w", fileHeader.Filename, err)
	}

	meta := &files.FileMeta{
		Filename: fileHeader.Filename,
		FileSize: int64(len(data)),
		FileType: fileHeader.Header.Get("Content-Type"),
		UserID:   userID,
	}

	if err := s.fileRepository.Create(ctx, meta); err != nil {
		s.logger.Warn("Blob ", meta.Filename, " left orphaned after metadata insert failure")
		return nil, fmt.Errorf("failed to save file metadata for %s: %w", meta.Filename, err)
	}

	s.logger.Info("Uploaded file ", meta.Filename, " with metadata id ", meta.ID)
	return meta, nil
}

// fileDownloadService implements the files.FileDownloadService interface
type fileDownloadService struct {
	blobConnector  files.BlobConnector
	fileRepository files.FileRepository
	logger         logger.Logger
}

// NewFileDownloadService creates a new instance of FileDownloadService
func NewFileDownloadService(blobConnector files.BlobConnector, fileRepository files.FileRepository, logger logger.Logger) (files.FileDownloadService, error) {
	return &fileDownloadService{
		blobConnector:  blobConnector,
		fileRepository: fileRepository,
		logger:         logger,
	}, nil
}

// Download retrieves a file's content. The ownership check against metadata
// runs strictly before any blob-store call; a (filename, userID) pair with no
// matching row never reaches the object store.
func (s *fileDownloadService) Download(ctx context.Context, filename string, userID *uint) (*files.FileMeta, []byte, error) {
	meta, err := s.fileRepository.FindByNameAndOwner(ctx, filename, userID)
	if err != nil {
		if errors.Is(err, files.ErrMetadataNotFound) {
			return nil, nil, fmt.Errorf("file %s: %w", filename, files.ErrAccessDenied)
		}
		return nil, nil, err
	}

	exists, err := s.blobConnector.Exists(ctx, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check blob %s: %w", filename, err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("file %s: %w", filename, files.ErrBlobNotFound)
	}

	data, err := s.blobConnector.Download(ctx, filename)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Downloaded file ", filename)
	return meta, data, nil
}

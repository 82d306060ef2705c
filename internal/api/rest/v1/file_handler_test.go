//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"user_file_service/internal/domain/files"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, fileName string, fileContent []byte, userID string) *http.Request {
	t.Helper()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)

	if fileName != "" {
		fileWriter, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fileWriter.Write(fileContent)
		require.NoError(t, err)
	}

	if userID != "" {
		require.NoError(t, writer.WriteField("user_id", userID))
	}

	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/upload", &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestFileHandler_Upload_Success(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	mockUploadService.On("Upload", mock.Anything, mock.Anything, (*uint)(nil)).
		Return(&files.FileMeta{ID: 7, Filename: "testfile.txt"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newUploadRequest(t, "testfile.txt", []byte("This is a test file content"), "")

	handler.Upload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"File uploaded successfully","file_id":7}`, w.Body.String())
	mockUploadService.AssertExpectations(t)
}

func TestFileHandler_Upload_WithUserID(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	expectedUserID := uint(3)
	mockUploadService.On("Upload", mock.Anything, mock.Anything, &expectedUserID).
		Return(&files.FileMeta{ID: 8, Filename: "testfile.txt", UserID: &expectedUserID}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newUploadRequest(t, "testfile.txt", []byte("content"), "3")

	handler.Upload(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUploadService.AssertExpectations(t)
}

func TestFileHandler_Upload_NoFilePart(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newUploadRequest(t, "", nil, "")

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileHandler_Upload_InvalidUserID(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newUploadRequest(t, "testfile.txt", []byte("content"), "abc")

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileHandler_Upload_ServiceError(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	mockUploadService.On("Upload", mock.Anything, mock.Anything, (*uint)(nil)).
		Return(nil, errors.New("failed to save file metadata"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newUploadRequest(t, "testfile.txt", []byte("content"), "")

	handler.Upload(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUploadService.AssertExpectations(t)
}

func TestFileHandler_Download_Success(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	fileContent := []byte("file content")
	meta := &files.FileMeta{ID: 7, Filename: "testfile.txt", FileType: "text/plain"}
	mockDownloadService.On("Download", mock.Anything, "testfile.txt", (*uint)(nil)).
		Return(meta, fileContent, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/download/testfile.txt", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "filename", Value: "testfile.txt"}}

	handler.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=testfile.txt", w.Header().Get("Content-Disposition"))
	assert.Equal(t, string(fileContent), w.Body.String())
	mockDownloadService.AssertExpectations(t)
}

func TestFileHandler_Download_WithUserID_Success(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	userID := uint(3)
	meta := &files.FileMeta{ID: 7, Filename: "testfile.txt", UserID: &userID}
	mockDownloadService.On("Download", mock.Anything, "testfile.txt", &userID).
		Return(meta, []byte("content"), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/download/testfile.txt?user_id=3", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "filename", Value: "testfile.txt"}}

	handler.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockDownloadService.AssertExpectations(t)
}

func TestFileHandler_Download_AccessDenied(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	wrongUserID := uint(99)
	mockDownloadService.On("Download", mock.Anything, "testfile.txt", &wrongUserID).
		Return(nil, nil, files.ErrAccessDenied)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/download/testfile.txt?user_id=99", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "filename", Value: "testfile.txt"}}

	handler.Download(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "denied")
	mockDownloadService.AssertExpectations(t)
}

func TestFileHandler_Download_BlobMissing(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	mockDownloadService.On("Download", mock.Anything, "testfile.txt", (*uint)(nil)).
		Return(nil, nil, files.ErrBlobNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/download/testfile.txt", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "filename", Value: "testfile.txt"}}

	handler.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockDownloadService.AssertExpectations(t)
}

func TestFileHandler_Download_BlobStoreError(t *testing.T) {
	mockUploadService := new(MockFileUploadService)
	mockDownloadService := new(MockFileDownloadService)
	handler := NewFileHandler(mockUploadService, mockDownloadService)

	mockDownloadService.On("Download", mock.Anything, "testfile.txt", (*uint)(nil)).
		Return(nil, nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/download/testfile.txt", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "filename", Value: "testfile.txt"}}

	handler.Download(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockDownloadService.AssertExpectations(t)
}

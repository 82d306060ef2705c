package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestForm builds a multipart form containing a single "file" part with
// the given name and content, parsed back the same way gin parses requests.
func CreateTestForm(t *testing.T, fileName string, fileContent []byte) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)

	_, err = part.Write(fileContent)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)

	return form
}

// CreateTestFileHeader builds a multipart FileHeader for a single in-memory
// file, as handed to handlers by gin's FormFile.
func CreateTestFileHeader(t *testing.T, fileName string, fileContent []byte) *multipart.FileHeader {
	t.Helper()

	form := CreateTestForm(t, fileName, fileContent)
	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	fileHeaders := form.File["file"]
	require.Len(t, fileHeaders, 1)

	return fileHeaders[0]
}

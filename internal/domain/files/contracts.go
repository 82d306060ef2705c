package files

import (
	"context"
	"io"
	"mime/multipart"
)

// FileUploadService defines methods for uploading files.
type FileUploadService interface {
	// Upload writes the file's bytes to blob storage under the original
	// filename (overwriting any existing blob with that name) and then records
	// a metadata row for it. It returns the recorded FileMeta and any error
	// encountered during the upload process.
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, userID *uint) (*FileMeta, error)
}

// FileDownloadService defines methods for downloading files.
type FileDownloadService interface {
	// Download looks up the metadata row matching filename and userID and, only
	// if one exists, retrieves the blob's content. It returns ErrAccessDenied
	// when no matching metadata row exists and ErrBlobNotFound when metadata
	// exists but the blob itself is absent.
	Download(ctx context.Context, filename string, userID *uint) (*FileMeta, []byte, error)
}

// FileRepository defines the interface for FileMeta-related database operations
type FileRepository interface {
	// Create adds a new FileMeta to the database and fills in the generated id
	// and insert timestamp
	Create(ctx context.Context, meta *FileMeta) error
	// FindByNameAndOwner retrieves the most recent FileMeta matching both
	// filename and owner. A nil userID matches rows with no owner. Returns
	// ErrMetadataNotFound when no row matches.
	FindByNameAndOwner(ctx context.Context, filename string, userID *uint) (*FileMeta, error)
}

// BlobConnector is an interface for interacting with blob storage. All
// operations are whole-object; there are no partial reads or multipart
// uploads. Implementations must be safe for concurrent use.
type BlobConnector interface {
	// Upload writes data under name, overwriting any existing blob.
	Upload(ctx context.Context, name string, data io.Reader) error

	// Exists reports whether a blob with the given name is present.
	Exists(ctx context.Context, name string) (bool, error)

	// Download retrieves a blob's content by name. Returns ErrBlobNotFound
	// when the blob is absent.
	Download(ctx context.Context, name string) ([]byte, error)
}

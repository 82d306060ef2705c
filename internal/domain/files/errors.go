// Package files defines the file metadata entity and the service, repository
// and blob-storage contracts around it. Callers should use errors.Is to match
// the sentinel errors declared here.
package files

import "errors"

var (
	// ErrMetadataNotFound is returned by the repository when no metadata row
	// matches the requested filename and owner.
	ErrMetadataNotFound = errors.New("file metadata not found")

	// ErrAccessDenied is returned when the (filename, user_id) pair supplied
	// on download does not match any recorded metadata row.
	ErrAccessDenied = errors.New("access to file denied")

	// ErrBlobNotFound is returned when a metadata row exists but the blob
	// itself is absent from the object store.
	ErrBlobNotFound = errors.New("blob not found")
)

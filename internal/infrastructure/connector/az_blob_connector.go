package connector

import (
	"context"
	"fmt"
	"io"

	"user_file_service/internal/domain/files"
	"user_file_service/internal/pkg/config"
	"user_file_service/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureBlobConnector implements files.BlobConnector against a single Azure
// Blob Storage container. The underlying client is safe for concurrent use;
// concurrent writes to the same key are last-write-wins.
type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector creates a shared-key authenticated client for the
// configured storage account and ensures the container exists (idempotent).
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (files.BlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blob connector settings: %w", err)
	}

	credential, err := azblob.NewSharedKeyCredential(settings.AccountName, settings.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	serviceURL := settings.ServiceURL
	if serviceURL == "" {
		serviceURL = fmt.Sprintf("https://%s.blob.core.windows.net/", settings.AccountName)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob service client: %w", err)
	}

	if _, err := client.CreateContainer(ctx, settings.ContainerName, nil); err != nil {
		if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
		}
	}

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload writes data under name, overwriting any existing blob with that name.
func (c *azureBlobConnector) Upload(ctx context.Context, name string, data io.Reader) error {
	if _, err := c.client.UploadStream(ctx, c.containerName, name, data, nil); err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", name, err)
	}

	c.logger.Info("Uploaded blob ", name)
	return nil
}

// Exists reports whether a blob with the given name is present in the container.
func (c *azureBlobConnector) Exists(ctx context.Context, name string) (bool, error) {
	blobClient := c.client.ServiceClient().NewContainerClient(c.containerName).NewBlobClient(name)

	if _, err := blobClient.GetProperties(ctx, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blob %s: %w", name, err)
	}

	return true, nil
}

// Download retrieves a blob's content by name.
func (c *azureBlobConnector) Download(ctx context.Context, name string) ([]byte, error) {
	response, err := c.client.DownloadStream(ctx, c.containerName, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("blob %s: %w", name, files.ErrBlobNotFound)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", name, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
	}

	c.logger.Info("Downloaded blob ", name)
	return data, nil
}

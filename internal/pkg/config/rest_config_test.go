//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `port: "8080"

database:
  type: "sqlite"
  path: ":memory:"

blob_connector:
  cloud_provider: "azure"
  account_name: "devstoreaccount1"
  account_key: "c2VjcmV0a2V5"
  container_name: "user-files"
  service_url: "http://127.0.0.1:10000/devstoreaccount1/"

logger:
  log_level: "info"
  log_type: "console"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeRestConfig_Success(t *testing.T) {
	path := writeTestConfig(t, testConfigYAML)

	cfg, err := InitializeRestConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, AzureCloudProvider, cfg.BlobConnector.CloudProvider)
	assert.Equal(t, "user-files", cfg.BlobConnector.ContainerName)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testConfigYAML)
	t.Setenv("BLOB_CONNECTOR_CONTAINER_NAME", "override-container")

	cfg, err := InitializeRestConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "override-container", cfg.BlobConnector.ContainerName)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.Error(t, err)
}

func TestInitializeRestConfig_InvalidConfig(t *testing.T) {
	// No port and no blob connector settings
	path := writeTestConfig(t, `database:
  type: "sqlite"

logger:
  log_level: "info"
  log_type: "console"
`)

	_, err := InitializeRestConfig(path)

	assert.Error(t, err)
}

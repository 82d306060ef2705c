package config

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

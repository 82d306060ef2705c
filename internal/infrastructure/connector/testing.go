//go:build integration
// +build integration

package connector

// Azurite well-known development account credentials

// TestCloudProvider is the default cloud provider for tests
const TestCloudProvider = "azure"

// TestAccountName is the Azurite development account name
const TestAccountName = "devstoreaccount1"

// TestAccountKey is the Azurite development account key
const TestAccountKey = "Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw=="

// TestServiceURL points at a local Azurite blob endpoint
const TestServiceURL = "http://127.0.0.1:10000/devstoreaccount1/"

// TestContainerName is the default test container name
const TestContainerName = "test-container"

package v1

import "time"

// BasePath is the root path all routes are registered under. The service
// exposes its routes at the root to stay wire-compatible with existing
// clients.
const BasePath = "/"

// RequestTimeout bounds every handler's database and blob-store calls.
// Deadline expiry surfaces as a store/blob error (HTTP 500).
const RequestTimeout = 30 * time.Second

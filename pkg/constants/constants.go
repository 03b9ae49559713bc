// Package constants provides shared constants used throughout the shelfmap
// codebase: timeouts, file permissions, and default remote endpoints.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// remote catalog service
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute
)

// Remote catalog service defaults
const (
	// DefaultAPIURL is the remote catalog service used when no override
	// is configured
	DefaultAPIURL = "https://fakestoreapi.com"
)

// File system constants
const (
	// DirPermissions is the default permission for created directories
	DirPermissions = 0o755

	// FilePermissions is the default permission for created files
	FilePermissions = 0o644

	// StateDirName is the per-user state directory name
	StateDirName = ".shelfmap"

	// CatalogSnapshotFile holds the canonical product list and filter settings
	CatalogSnapshotFile = "catalog.yaml"

	// OverridesSnapshotFile holds locally authored product records
	OverridesSnapshotFile = "overrides.yaml"
)

// Package constants defines shared defaults used across the client and
// the CLI.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Retry backoff bounds applied when the caller enables retries without
// choosing their own.
const (
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second
)

// DefaultPageLimit is the per-page record count used when the caller
// does not set one.
const DefaultPageLimit = 50

package layout

import "errors"

var (
	// ErrConfigurationNotFound indicates the configuration was not found
	ErrConfigurationNotFound = errors.New("configuration not found")

	// ErrConfigurationActive indicates the active configuration cannot be deleted
	ErrConfigurationActive = errors.New("active configuration cannot be deleted")

	// ErrActiveConflict indicates a concurrent activation collided on the
	// one-active-per-property constraint
	ErrActiveConflict = errors.New("another configuration was activated concurrently")
)

package layout

import "context"

// ConfigurationRepository defines the interface for configuration persistence
type ConfigurationRepository interface {
	// Create inserts a new configuration
	Create(ctx context.Context, config *Configuration) error

	// Update persists metadata changes (name, active flag)
	Update(ctx context.Context, config *Configuration) error

	// Delete removes a configuration, returning false when it does not exist
	Delete(ctx context.Context, id uint) (bool, error)

	// GetByID retrieves a configuration by ID, nil when not found
	GetByID(ctx context.Context, id uint) (*Configuration, error)

	// ListByProperty retrieves all configurations of a property, newest first
	ListByProperty(ctx context.Context, propertyID uint) ([]*Configuration, error)

	// DeactivateActive clears the active flag on the property's currently
	// active configuration, if any
	DeactivateActive(ctx context.Context, propertyID uint) error
}

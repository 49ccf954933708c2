// Package layout provides domain models for named, versioned snapshots of a
// property's block/plot layout.
package layout

import (
	"fmt"
	"strings"
	"time"
)

// Configuration is a point-in-time copy of one property's entire block/plot
// layout. It holds values, not references to live rows; applying it rebuilds
// the live inventory from the payload. At most one configuration per property
// is active.
type Configuration struct {
	id         uint
	propertyID uint
	name       string
	blocks     []BlockLayout
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewConfiguration creates a configuration from a captured layout
func NewConfiguration(propertyID uint, name string, blocks []BlockLayout, active bool) (*Configuration, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("configuration name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("configuration name is too long")
	}
	if err := ValidatePayload(blocks); err != nil {
		return nil, fmt.Errorf("invalid layout payload: %w", err)
	}

	now := time.Now()
	return &Configuration{
		propertyID: propertyID,
		name:       name,
		blocks:     blocks,
		active:     active,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructConfiguration reconstructs a configuration from persistence
func ReconstructConfiguration(id, propertyID uint, name string, blocks []BlockLayout, active bool, createdAt, updatedAt time.Time) (*Configuration, error) {
	if id == 0 {
		return nil, fmt.Errorf("configuration ID cannot be zero")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("configuration name is required")
	}

	return &Configuration{
		id:         id,
		propertyID: propertyID,
		name:       name,
		blocks:     blocks,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the configuration ID
func (c *Configuration) ID() uint {
	return c.id
}

// PropertyID returns the owning property ID
func (c *Configuration) PropertyID() uint {
	return c.propertyID
}

// Name returns the configuration name
func (c *Configuration) Name() string {
	return c.name
}

// Blocks returns the layout payload
func (c *Configuration) Blocks() []BlockLayout {
	return c.blocks
}

// IsActive reports whether this is the property's active configuration
func (c *Configuration) IsActive() bool {
	return c.active
}

// CreatedAt returns when the configuration was created
func (c *Configuration) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the configuration metadata was last updated
func (c *Configuration) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetID sets the configuration ID (only for persistence layer use)
func (c *Configuration) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("configuration ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("configuration ID cannot be zero")
	}
	c.id = id
	return nil
}

// Rename updates the configuration name
func (c *Configuration) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("configuration name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("configuration name is too long")
	}
	if c.name == name {
		return nil
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

// Activate marks this configuration as the property's active one
func (c *Configuration) Activate() {
	if c.active {
		return
	}
	c.active = true
	c.updatedAt = time.Now()
}

// Deactivate clears the active flag
func (c *Configuration) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	c.updatedAt = time.Now()
}

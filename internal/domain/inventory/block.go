// Package inventory provides domain models and business logic for the live
// block/plot hierarchy of a land property.
package inventory

import (
	"fmt"
	"strings"
	"time"
)

// Block represents a named subdivision of a land property.
// Block names are unique within a property ignoring case.
type Block struct {
	id          uint
	propertyID  uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBlock creates a new block for a property
func NewBlock(propertyID uint, name, description string) (*Block, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("block name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("block name is too long")
	}

	now := time.Now()
	return &Block{
		propertyID:  propertyID,
		name:        strings.TrimSpace(name),
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructBlock reconstructs a block from persistence
func ReconstructBlock(id, propertyID uint, name, description string, createdAt, updatedAt time.Time) (*Block, error) {
	if id == 0 {
		return nil, fmt.Errorf("block ID cannot be zero")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("block name is required")
	}

	return &Block{
		id:          id,
		propertyID:  propertyID,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the block ID
func (b *Block) ID() uint {
	return b.id
}

// PropertyID returns the owning property ID
func (b *Block) PropertyID() uint {
	return b.propertyID
}

// Name returns the block name
func (b *Block) Name() string {
	return b.name
}

// NameKey returns the lowercased name used for case-insensitive uniqueness
func (b *Block) NameKey() string {
	return strings.ToLower(b.name)
}

// Description returns the block description
func (b *Block) Description() string {
	return b.description
}

// CreatedAt returns when the block was created
func (b *Block) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns when the block was last updated
func (b *Block) UpdatedAt() time.Time {
	return b.updatedAt
}

// SetID sets the block ID (only for persistence layer use)
func (b *Block) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("block ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("block ID cannot be zero")
	}
	b.id = id
	return nil
}

// UpdateName updates the block name
func (b *Block) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("block name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("block name is too long")
	}
	if b.name == name {
		return nil
	}
	b.name = name
	b.updatedAt = time.Now()
	return nil
}

// UpdateDescription updates the block description
func (b *Block) UpdateDescription(description string) {
	if b.description == description {
		return
	}
	b.description = description
	b.updatedAt = time.Now()
}

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BlockModel represents the database persistence model for blocks.
// NameKey is the lowercased block name; the composite unique index on
// (property_id, name_key) enforces case-insensitive name uniqueness per
// property regardless of column collation.
type BlockModel struct {
	ID          uint   `gorm:"primarykey"`
	PropertyID  uint   `gorm:"not null;index:idx_blocks_property_id;uniqueIndex:idx_blocks_property_name"`
	Name        string `gorm:"not null;size:100"`
	NameKey     string `gorm:"not null;size:100;uniqueIndex:idx_blocks_property_name"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (BlockModel) TableName() string {
	return "blocks"
}

// BeforeSave hook for GORM.
func (m *BlockModel) BeforeSave(tx *gorm.DB) error {
	if m.NameKey == "" {
		m.NameKey = strings.ToLower(m.Name)
	}
	return nil
}

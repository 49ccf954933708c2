package models

import (
	"time"

	"gorm.io/datatypes"
)

// ConfigurationModel represents the database persistence model for layout
// configurations. ActiveMark is NULL for inactive rows and 1 for the active
// one, so the composite unique index on (property_id, active_mark) admits any
// number of inactive configurations but at most one active per property.
type ConfigurationModel struct {
	ID         uint           `gorm:"primarykey"`
	PropertyID uint           `gorm:"not null;index:idx_configurations_property_id;uniqueIndex:idx_configurations_property_active"`
	Name       string         `gorm:"not null;size:100"`
	Layout     datatypes.JSON `gorm:"not null"`
	ActiveMark *uint8         `gorm:"uniqueIndex:idx_configurations_property_active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM.
func (ConfigurationModel) TableName() string {
	return "land_configurations"
}

// IsActive reports whether the row is the active configuration.
func (m *ConfigurationModel) IsActive() bool {
	return m.ActiveMark != nil
}

// SetActive translates the boolean flag into the nullable marker column.
func (m *ConfigurationModel) SetActive(active bool) {
	if active {
		one := uint8(1)
		m.ActiveMark = &one
	} else {
		m.ActiveMark = nil
	}
}

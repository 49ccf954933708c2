package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PlotModel represents the database persistence model for plots.
// NumberKey mirrors Number in lowercase; the composite unique index on
// (block_id, number_key) enforces case-insensitive number uniqueness per
// block. Price is free-form text so values like "15 lakhs" are preserved.
type PlotModel struct {
	ID          uint    `gorm:"primarykey"`
	BlockID     uint    `gorm:"not null;index:idx_plots_block_id;uniqueIndex:idx_plots_block_number"`
	Number      string  `gorm:"not null;size:50"`
	NumberKey   string  `gorm:"not null;size:50;uniqueIndex:idx_plots_block_number"`
	Area        float64 `gorm:"not null;check:chk_plots_area,area > 0"`
	Price       string  `gorm:"size:100"`
	Status      string  `gorm:"not null;default:available;size:20;index:idx_plots_status"`
	Description string  `gorm:"size:500"`
	BookedBy    *uint
	BookedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (PlotModel) TableName() string {
	return "plots"
}

// BeforeSave hook for GORM. Rejects non-positive areas at the row level, as
// a backstop for the CHECK constraint on databases that skip it.
func (m *PlotModel) BeforeSave(tx *gorm.DB) error {
	if m.Area <= 0 {
		return fmt.Errorf("plot area must be greater than zero, got %v", m.Area)
	}
	if m.NumberKey == "" {
		m.NumberKey = strings.ToLower(m.Number)
	}
	if m.Status == "" {
		m.Status = "available"
	}
	return nil
}

package models

import "time"

// StatusHistoryModel represents the database persistence model for plot
// status transitions. Rows are append-only. PlotID is nullable so history
// survives plot deletion; delete paths null it out explicitly.
type StatusHistoryModel struct {
	ID             uint  `gorm:"primarykey"`
	PlotID         *uint `gorm:"index:idx_status_history_plot_id"`
	PreviousStatus string `gorm:"not null;size:20"`
	NewStatus      string `gorm:"not null;size:20"`
	ChangedBy      *uint
	Reason         string `gorm:"size:500"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM.
func (StatusHistoryModel) TableName() string {
	return "plot_status_history"
}

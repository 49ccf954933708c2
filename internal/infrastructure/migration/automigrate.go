package migration

import (
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistent model in schema dependency order
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BlockModel{},
		&models.PlotModel{},
		&models.StatusHistoryModel{},
		&models.ConfigurationModel{},
	}
}

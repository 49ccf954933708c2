package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.BlockModel{},
		&models.PlotModel{},
		&models.StatusHistoryModel{},
		&models.ConfigurationModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestBlock(t *testing.T, repo inventory.BlockRepository, propertyID uint, name string) *inventory.Block {
	block, err := inventory.NewBlock(propertyID, name, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), block))
	return block
}

func createTestPlot(t *testing.T, repo inventory.PlotRepository, blockID uint, number string, area float64, status inventory.PlotStatus) *inventory.Plot {
	plot, err := inventory.NewPlot(blockID, number, area, "", status, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), plot))
	return plot
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

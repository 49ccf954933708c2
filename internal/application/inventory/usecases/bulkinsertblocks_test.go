package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/repository"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	apperrors "github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

func newBulkInsertFixture(t *testing.T) (*BulkInsertBlocksUseCase, inventory.BlockRepository, inventory.PlotRepository) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.BlockModel{},
		&models.PlotModel{},
		&models.StatusHistoryModel{},
	))

	log := logger.NewLogger()
	blockRepo := repository.NewBlockRepository(gdb, log)
	plotRepo := repository.NewPlotRepository(gdb, log)
	uc := NewBulkInsertBlocksUseCase(blockRepo, plotRepo, db.NewTransactionManager(gdb), log)
	return uc, blockRepo, plotRepo
}

func bulkPayload() []layout.BlockLayout {
	return []layout.BlockLayout{
		{
			Name: "Block A",
			Plots: []layout.PlotLayout{
				{PlotNumber: "P001", Area: 1200, Price: "15 lakhs", Status: "available"},
				{PlotNumber: "P002", Area: 1500, Status: "booked"},
			},
		},
		{Name: "Block B"},
	}
}

func TestBulkInsertBlocks_MaterializesHierarchy(t *testing.T) {
	uc, _, plotRepo := newBulkInsertFixture(t)
	ctx := context.Background()

	result, err := uc.Execute(ctx, BulkInsertBlocksCommand{PropertyID: 1, Blocks: bulkPayload()})
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.NotZero(t, result[0].ID)
	assert.Equal(t, "Block A", result[0].Name)
	require.Len(t, result[0].Plots, 2)
	assert.NotZero(t, result[0].Plots[0].ID)
	assert.Equal(t, "P001", result[0].Plots[0].PlotNumber)
	assert.Equal(t, "P002", result[0].Plots[1].PlotNumber)
	assert.Empty(t, result[1].Plots)

	plots, err := plotRepo.ListByBlock(ctx, result[0].ID)
	require.NoError(t, err)
	assert.Len(t, plots, 2, "payload order is the persisted order")
}

func TestBulkInsertBlocks_ExistingNameRollsBackBatch(t *testing.T) {
	uc, blockRepo, _ := newBulkInsertFixture(t)
	ctx := context.Background()

	existing, err := inventory.NewBlock(1, "block b", "")
	require.NoError(t, err)
	require.NoError(t, blockRepo.Create(ctx, existing))

	_, err = uc.Execute(ctx, BulkInsertBlocksCommand{PropertyID: 1, Blocks: bulkPayload()})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	blocks, err := blockRepo.ListByProperty(ctx, 1)
	require.NoError(t, err)
	require.Len(t, blocks, 1, "Block A from the failed batch must not survive")
	assert.Equal(t, "block b", blocks[0].Name())
}

func TestBulkInsertBlocks_InvalidPayloadRejectedUpFront(t *testing.T) {
	uc, blockRepo, _ := newBulkInsertFixture(t)
	ctx := context.Background()

	payload := bulkPayload()
	payload[0].Plots[1].Area = 0

	_, err := uc.Execute(ctx, BulkInsertBlocksCommand{PropertyID: 1, Blocks: payload})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	blocks, err := blockRepo.ListByProperty(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestBulkInsertBlocks_RequiresProperty(t *testing.T) {
	uc, _, _ := newBulkInsertFixture(t)

	_, err := uc.Execute(context.Background(), BulkInsertBlocksCommand{PropertyID: 0, Blocks: bulkPayload()})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

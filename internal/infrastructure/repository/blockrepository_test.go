package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	apperrors "github.com/plotwise-inc/plotwise/internal/shared/errors"
)

func TestBlockRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db, testLogger())
	ctx := context.Background()

	t.Run("assigns generated ID", func(t *testing.T) {
		block := createTestBlock(t, repo, 1, "Block A")
		assert.NotZero(t, block.ID())
	})

	t.Run("rejects duplicate name ignoring case", func(t *testing.T) {
		block, err := inventory.NewBlock(1, "BLOCK A", "")
		require.NoError(t, err)

		err = repo.Create(ctx, block)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("same name allowed in another property", func(t *testing.T) {
		block, err := inventory.NewBlock(2, "Block A", "")
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, block))
	})
}

func TestBlockRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db, testLogger())
	ctx := context.Background()

	created := createTestBlock(t, repo, 1, "Block A")

	t.Run("returns stored block", func(t *testing.T) {
		block, err := repo.GetByID(ctx, created.ID())
		require.NoError(t, err)
		require.NotNil(t, block)
		assert.Equal(t, "Block A", block.Name())
		assert.Equal(t, uint(1), block.PropertyID())
	})

	t.Run("nil when missing", func(t *testing.T) {
		block, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, block)
	})
}

func TestBlockRepository_ListByProperty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db, testLogger())
	ctx := context.Background()

	createTestBlock(t, repo, 1, "Block A")
	createTestBlock(t, repo, 1, "Block B")
	createTestBlock(t, repo, 2, "Block C")

	blocks, err := repo.ListByProperty(ctx, 1)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Block A", blocks[0].Name())
	assert.Equal(t, "Block B", blocks[1].Name())

	empty, err := repo.ListByProperty(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBlockRepository_ExistsByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db, testLogger())
	ctx := context.Background()

	createTestBlock(t, repo, 1, "Block A")

	exists, err := repo.ExistsByName(ctx, 1, "block a")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, 1, "  BLOCK A  ")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, 1, "Block B")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByName(ctx, 2, "Block A")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlockRepository_SafeDelete(t *testing.T) {
	db := setupTestDB(t)
	blockRepo := NewBlockRepository(db, testLogger())
	plotRepo := NewPlotRepository(db, testLogger())
	historyRepo := NewStatusHistoryRepository(db, testLogger())
	ctx := context.Background()

	t.Run("deletes block with its plots", func(t *testing.T) {
		block := createTestBlock(t, blockRepo, 1, "Block A")
		plot := createTestPlot(t, plotRepo, block.ID(), "P001", 1200, inventory.PlotStatusAvailable)

		deleted, err := blockRepo.SafeDelete(ctx, block.ID())
		require.NoError(t, err)
		assert.True(t, deleted)

		gone, err := blockRepo.GetByID(ctx, block.ID())
		require.NoError(t, err)
		assert.Nil(t, gone)

		plotGone, err := plotRepo.GetByID(ctx, plot.ID())
		require.NoError(t, err)
		assert.Nil(t, plotGone)
	})

	t.Run("false without error when missing", func(t *testing.T) {
		deleted, err := blockRepo.SafeDelete(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("status history survives with detached plot reference", func(t *testing.T) {
		block := createTestBlock(t, blockRepo, 2, "Block B")
		plot := createTestPlot(t, plotRepo, block.ID(), "P001", 1000, inventory.PlotStatusAvailable)

		change, err := inventory.NewStatusChange(plot.ID(), inventory.PlotStatusAvailable, inventory.PlotStatusBooked, nil, "")
		require.NoError(t, err)
		require.NoError(t, historyRepo.Record(ctx, change))

		deleted, err := blockRepo.SafeDelete(ctx, block.ID())
		require.NoError(t, err)
		require.True(t, deleted)

		var count int64
		require.NoError(t, db.Table("plot_status_history").Where("id = ?", change.ID()).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		var nullCount int64
		require.NoError(t, db.Table("plot_status_history").Where("id = ? AND plot_id IS NULL", change.ID()).Count(&nullCount).Error)
		assert.Equal(t, int64(1), nullCount)
	})
}

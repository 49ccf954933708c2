package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
)

func TestStatusHistoryRepository_Record(t *testing.T) {
	db := setupTestDB(t)
	blockRepo := NewBlockRepository(db, testLogger())
	plotRepo := NewPlotRepository(db, testLogger())
	historyRepo := NewStatusHistoryRepository(db, testLogger())
	ctx := context.Background()

	block := createTestBlock(t, blockRepo, 1, "Block A")
	plot := createTestPlot(t, plotRepo, block.ID(), "P001", 1200, inventory.PlotStatusAvailable)

	actorID := uint(5)
	change, err := inventory.NewStatusChange(plot.ID(), inventory.PlotStatusAvailable, inventory.PlotStatusBooked, &actorID, "customer paid advance")
	require.NoError(t, err)

	require.NoError(t, historyRepo.Record(ctx, change))
	assert.NotZero(t, change.ID())
}

func TestStatusHistoryRepository_ListByPlot(t *testing.T) {
	db := setupTestDB(t)
	blockRepo := NewBlockRepository(db, testLogger())
	plotRepo := NewPlotRepository(db, testLogger())
	historyRepo := NewStatusHistoryRepository(db, testLogger())
	ctx := context.Background()

	block := createTestBlock(t, blockRepo, 1, "Block A")
	plot := createTestPlot(t, plotRepo, block.ID(), "P001", 1200, inventory.PlotStatusAvailable)
	other := createTestPlot(t, plotRepo, block.ID(), "P002", 1000, inventory.PlotStatusAvailable)

	first, err := inventory.NewStatusChange(plot.ID(), inventory.PlotStatusAvailable, inventory.PlotStatusBooked, nil, "")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Record(ctx, first))

	second, err := inventory.NewStatusChange(plot.ID(), inventory.PlotStatusBooked, inventory.PlotStatusSold, nil, "registration complete")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Record(ctx, second))

	noise, err := inventory.NewStatusChange(other.ID(), inventory.PlotStatusAvailable, inventory.PlotStatusReserved, nil, "")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Record(ctx, noise))

	changes, err := historyRepo.ListByPlot(ctx, plot.ID())
	require.NoError(t, err)
	require.Len(t, changes, 2)

	assert.Equal(t, second.ID(), changes[0].ID(), "newest change comes first")
	assert.Equal(t, inventory.PlotStatusSold, changes[0].Next())
	assert.Equal(t, "registration complete", changes[0].Reason())
	assert.Equal(t, first.ID(), changes[1].ID())
	assert.Equal(t, inventory.PlotStatusBooked, changes[1].Next())
}

func TestStatusHistoryRepository_ListByPlot_Empty(t *testing.T) {
	db := setupTestDB(t)
	blockRepo := NewBlockRepository(db, testLogger())
	plotRepo := NewPlotRepository(db, testLogger())
	historyRepo := NewStatusHistoryRepository(db, testLogger())
	ctx := context.Background()

	block := createTestBlock(t, blockRepo, 1, "Block A")
	plot := createTestPlot(t, plotRepo, block.ID(), "P001", 1200, inventory.PlotStatusAvailable)

	changes, err := historyRepo.ListByPlot(ctx, plot.ID())
	require.NoError(t, err)
	assert.Empty(t, changes)
}

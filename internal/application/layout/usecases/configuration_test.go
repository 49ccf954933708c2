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

// fixture wires the layout use cases against an in-memory database with the
// real repositories, so save/apply round trips exercise the same SQL paths
// as production.
type fixture struct {
	configRepo layout.ConfigurationRepository
	blockRepo  inventory.BlockRepository
	plotRepo   inventory.PlotRepository
	txMgr      *db.TransactionManager

	save      *SaveConfigurationUseCase
	apply     *ApplyConfigurationUseCase
	duplicate *DuplicateConfigurationUseCase
	remove    *DeleteConfigurationUseCase
	list      *ListConfigurationsUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.BlockModel{},
		&models.PlotModel{},
		&models.StatusHistoryModel{},
		&models.ConfigurationModel{},
	)
	require.NoError(t, err)

	log := logger.NewLogger()
	configRepo := repository.NewConfigurationRepository(gdb, log)
	blockRepo := repository.NewBlockRepository(gdb, log)
	plotRepo := repository.NewPlotRepository(gdb, log)
	txMgr := db.NewTransactionManager(gdb)

	return &fixture{
		configRepo: configRepo,
		blockRepo:  blockRepo,
		plotRepo:   plotRepo,
		txMgr:      txMgr,
		save:       NewSaveConfigurationUseCase(configRepo, blockRepo, plotRepo, txMgr, log),
		apply:      NewApplyConfigurationUseCase(configRepo, blockRepo, plotRepo, txMgr, log),
		duplicate:  NewDuplicateConfigurationUseCase(configRepo, log),
		remove:     NewDeleteConfigurationUseCase(configRepo, log),
		list:       NewListConfigurationsUseCase(configRepo),
	}
}

// seedInventory builds a small live layout: Block A with two plots, Block B
// empty.
func (f *fixture) seedInventory(t *testing.T, propertyID uint) {
	t.Helper()
	ctx := context.Background()

	blockA, err := inventory.NewBlock(propertyID, "Block A", "corner facing")
	require.NoError(t, err)
	require.NoError(t, f.blockRepo.Create(ctx, blockA))

	blockB, err := inventory.NewBlock(propertyID, "Block B", "")
	require.NoError(t, err)
	require.NoError(t, f.blockRepo.Create(ctx, blockB))

	p1, err := inventory.NewPlot(blockA.ID(), "P001", 1200, "15 lakhs", inventory.PlotStatusAvailable, "")
	require.NoError(t, err)
	require.NoError(t, f.plotRepo.Create(ctx, p1))

	p2, err := inventory.NewPlot(blockA.ID(), "P002", 1500, "", inventory.PlotStatusBooked, "")
	require.NoError(t, err)
	require.NoError(t, f.plotRepo.Create(ctx, p2))
}

func TestSaveConfiguration_SnapshotsLiveLayout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedInventory(t, 1)

	saved, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "Phase 1"})
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Phase 1", saved.Name)
	assert.True(t, saved.Active)

	require.Len(t, saved.Blocks, 2)
	assert.Equal(t, "Block A", saved.Blocks[0].Name)
	require.Len(t, saved.Blocks[0].Plots, 2)
	assert.Equal(t, "P001", saved.Blocks[0].Plots[0].PlotNumber)
	assert.Equal(t, float64(1200), saved.Blocks[0].Plots[0].Area)
	assert.Equal(t, "booked", saved.Blocks[0].Plots[1].Status)
	assert.Equal(t, "Block B", saved.Blocks[1].Name)
	assert.Empty(t, saved.Blocks[1].Plots)
}

func TestSaveConfiguration_EmptyPropertyIsLegal(t *testing.T) {
	f := newFixture(t)

	saved, err := f.save.Execute(context.Background(), SaveConfigurationCommand{PropertyID: 1, Name: "blank slate"})
	require.NoError(t, err)
	assert.Empty(t, saved.Blocks)
	assert.True(t, saved.Active)
}

func TestSaveConfiguration_DeactivatesPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "first"})
	require.NoError(t, err)

	second, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "second"})
	require.NoError(t, err)
	assert.True(t, second.Active)

	stored, err := f.configRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive())
}

func TestApplyConfiguration_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedInventory(t, 1)

	saved, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "Phase 1"})
	require.NoError(t, err)

	// mutate the live layout so apply has something to undo
	extra, err := inventory.NewBlock(1, "Block C", "")
	require.NoError(t, err)
	require.NoError(t, f.blockRepo.Create(ctx, extra))

	applied, err := f.apply.Execute(ctx, ApplyConfigurationCommand{ConfigurationID: saved.ID})
	require.NoError(t, err)
	assert.True(t, applied.Active)

	blocks, err := f.blockRepo.ListByProperty(ctx, 1)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Block A", blocks[0].Name())
	assert.Equal(t, "Block B", blocks[1].Name())

	plots, err := f.plotRepo.ListByBlock(ctx, blocks[0].ID())
	require.NoError(t, err)
	require.Len(t, plots, 2)
	assert.Equal(t, "P001", plots[0].Number())
	assert.Equal(t, inventory.PlotStatusAvailable, plots[0].Status())
	assert.Equal(t, "P002", plots[1].Number())
	assert.Equal(t, inventory.PlotStatusBooked, plots[1].Status())

	empty, err := f.plotRepo.ListByBlock(ctx, blocks[1].ID())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestApplyConfiguration_SwitchesActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "first"})
	require.NoError(t, err)

	second, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "second"})
	require.NoError(t, err)

	applied, err := f.apply.Execute(ctx, ApplyConfigurationCommand{ConfigurationID: first.ID})
	require.NoError(t, err)
	assert.True(t, applied.Active)

	stored, err := f.configRepo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive(), "previously active configuration must be deactivated")
}

func TestApplyConfiguration_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.apply.Execute(context.Background(), ApplyConfigurationCommand{ConfigurationID: 9999})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestApplyConfiguration_HistorySurvivesTeardown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedInventory(t, 1)

	saved, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "Phase 1"})
	require.NoError(t, err)

	blocks, err := f.blockRepo.ListByProperty(ctx, 1)
	require.NoError(t, err)
	plots, err := f.plotRepo.ListByBlock(ctx, blocks[0].ID())
	require.NoError(t, err)
	require.NotEmpty(t, plots)

	gdb := f.txMgr.GetTx(ctx)
	historyRepo := repository.NewStatusHistoryRepository(gdb, logger.NewLogger())
	change, err := inventory.NewStatusChange(plots[0].ID(), inventory.PlotStatusAvailable, inventory.PlotStatusSold, nil, "")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Record(ctx, change))

	_, err = f.apply.Execute(ctx, ApplyConfigurationCommand{ConfigurationID: saved.ID})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Table("plot_status_history").Where("id = ? AND plot_id IS NULL", change.ID()).Count(&count).Error)
	assert.Equal(t, int64(1), count, "audit rows outlive the plots they describe")
}

func TestDuplicateConfiguration_CopyIsInactive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedInventory(t, 1)

	saved, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "original"})
	require.NoError(t, err)

	copied, err := f.duplicate.Execute(ctx, DuplicateConfigurationCommand{ConfigurationID: saved.ID, Name: "copy"})
	require.NoError(t, err)

	assert.NotEqual(t, saved.ID, copied.ID)
	assert.Equal(t, "copy", copied.Name)
	assert.False(t, copied.Active)
	assert.Equal(t, saved.Blocks, copied.Blocks)

	original, err := f.configRepo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, original.IsActive(), "duplicating must not touch the source")
}

func TestDuplicateConfiguration_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.duplicate.Execute(context.Background(), DuplicateConfigurationCommand{ConfigurationID: 9999, Name: "copy"})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestDeleteConfiguration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	active, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "active"})
	require.NoError(t, err)

	draft, err := f.duplicate.Execute(ctx, DuplicateConfigurationCommand{ConfigurationID: active.ID, Name: "draft"})
	require.NoError(t, err)

	t.Run("active configuration is protected", func(t *testing.T) {
		err := f.remove.Execute(ctx, DeleteConfigurationCommand{ConfigurationID: active.ID})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("inactive configuration deletes", func(t *testing.T) {
		require.NoError(t, f.remove.Execute(ctx, DeleteConfigurationCommand{ConfigurationID: draft.ID}))

		stored, err := f.configRepo.GetByID(ctx, draft.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("missing configuration is not found", func(t *testing.T) {
		err := f.remove.Execute(ctx, DeleteConfigurationCommand{ConfigurationID: 9999})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestListConfigurations_Summaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedInventory(t, 1)

	saved, err := f.save.Execute(ctx, SaveConfigurationCommand{PropertyID: 1, Name: "Phase 1"})
	require.NoError(t, err)

	summaries, err := f.list.Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, saved.ID, summaries[0].ID)
	assert.Equal(t, 2, summaries[0].BlockCount)
	assert.Equal(t, 2, summaries[0].PlotCount)
	assert.True(t, summaries[0].Active)
}

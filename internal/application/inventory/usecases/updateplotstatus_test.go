package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	apperrors "github.com/plotwise-inc/plotwise/internal/shared/errors"
)

func testPlot(t *testing.T, status inventory.PlotStatus) *inventory.Plot {
	t.Helper()

	plot, err := inventory.NewPlot(1, "P001", 1200, "", status, "")
	require.NoError(t, err)
	require.NoError(t, plot.SetID(10))
	return plot
}

func TestUpdatePlotStatus_Success(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plot := testPlot(t, inventory.PlotStatusAvailable)
	plotRepo.On("GetByID", mock.Anything, uint(10)).Return(plot, nil)
	plotRepo.On("Update", mock.Anything, plot).Return(nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(change *inventory.StatusChange) bool {
		return change.Previous() == inventory.PlotStatusAvailable && change.Next() == inventory.PlotStatusBooked
	})).Return(nil)

	uc := NewUpdatePlotStatusUseCase(plotRepo, recorder, testTxManager(t), log)

	actorID := uint(5)
	found, err := uc.Execute(context.Background(), UpdatePlotStatusCommand{
		PlotID:  10,
		Status:  "booked",
		ActorID: &actorID,
		Reason:  "advance received",
	})

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, inventory.PlotStatusBooked, plot.Status())
	plotRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestUpdatePlotStatus_AuditFailureIsSwallowed(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plot := testPlot(t, inventory.PlotStatusAvailable)
	plotRepo.On("GetByID", mock.Anything, uint(10)).Return(plot, nil)
	plotRepo.On("Update", mock.Anything, plot).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(errors.New("history store down"))
	log.On("Warnw", "status history write failed, continuing without audit entry", mock.Anything).Return()

	uc := NewUpdatePlotStatusUseCase(plotRepo, recorder, testTxManager(t), log)

	found, err := uc.Execute(context.Background(), UpdatePlotStatusCommand{PlotID: 10, Status: "sold"})

	require.NoError(t, err, "a failing audit write must not fail the status update")
	assert.True(t, found)
	assert.Equal(t, inventory.PlotStatusSold, plot.Status())
	log.AssertExpectations(t)
}

func TestUpdatePlotStatus_NoAuditWhenUnchanged(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plot := testPlot(t, inventory.PlotStatusBooked)
	plotRepo.On("GetByID", mock.Anything, uint(10)).Return(plot, nil)

	uc := NewUpdatePlotStatusUseCase(plotRepo, recorder, testTxManager(t), log)

	found, err := uc.Execute(context.Background(), UpdatePlotStatusCommand{PlotID: 10, Status: "booked"})

	require.NoError(t, err)
	assert.True(t, found)
	plotRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestUpdatePlotStatus_PlotNotFound(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plotRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	uc := NewUpdatePlotStatusUseCase(plotRepo, recorder, testTxManager(t), log)

	found, err := uc.Execute(context.Background(), UpdatePlotStatusCommand{PlotID: 99, Status: "sold"})

	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdatePlotStatus_InvalidStatus(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	uc := NewUpdatePlotStatusUseCase(plotRepo, recorder, testTxManager(t), log)

	_, err := uc.Execute(context.Background(), UpdatePlotStatusCommand{PlotID: 10, Status: "demolished"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	plotRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
)

func TestUpdatePlotBooking_SoldRecordsUser(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plot := testPlot(t, inventory.PlotStatusBooked)
	userID := uint(5)
	plot.ApplyBooking(&userID)

	plotRepo.On("GetByID", mock.Anything, uint(10)).Return(plot, nil)
	plotRepo.On("Update", mock.Anything, plot).Return(nil)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(change *inventory.StatusChange) bool {
		return change.Previous() == inventory.PlotStatusBooked &&
			change.Next() == inventory.PlotStatusSold &&
			change.ChangedBy() != nil && *change.ChangedBy() == userID
	})).Return(nil).Once()

	uc := NewUpdatePlotBookingUseCase(plotRepo, recorder, testTxManager(t), log)

	found, err := uc.Execute(context.Background(), UpdatePlotBookingCommand{
		PlotID: 10,
		Status: "sold",
		UserID: &userID,
	})

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, inventory.PlotStatusSold, plot.Status())
	require.NotNil(t, plot.BookedBy())
	assert.Equal(t, userID, *plot.BookedBy())
	assert.NotNil(t, plot.BookedAt())
	recorder.AssertExpectations(t)
}

func TestUpdatePlotBooking_ReleaseClearsBooking(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plot := testPlot(t, inventory.PlotStatusBooked)
	userID := uint(5)
	plot.ApplyBooking(&userID)

	plotRepo.On("GetByID", mock.Anything, uint(10)).Return(plot, nil)
	plotRepo.On("Update", mock.Anything, plot).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdatePlotBookingUseCase(plotRepo, recorder, testTxManager(t), log)

	found, err := uc.Execute(context.Background(), UpdatePlotBookingCommand{
		PlotID: 10,
		Status: "available",
	})

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, inventory.PlotStatusAvailable, plot.Status())
	assert.Nil(t, plot.BookedBy())
	assert.Nil(t, plot.BookedAt())
}

func TestUpdatePlotBooking_SameStatusStillUpdatesBooking(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plot := testPlot(t, inventory.PlotStatusBooked)

	plotRepo.On("GetByID", mock.Anything, uint(10)).Return(plot, nil)
	plotRepo.On("Update", mock.Anything, plot).Return(nil)

	uc := NewUpdatePlotBookingUseCase(plotRepo, recorder, testTxManager(t), log)

	userID := uint(7)
	found, err := uc.Execute(context.Background(), UpdatePlotBookingCommand{
		PlotID: 10,
		Status: "booked",
		UserID: &userID,
	})

	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, plot.BookedBy())
	assert.Equal(t, userID, *plot.BookedBy())
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	plotRepo.AssertExpectations(t)
}

func TestUpdatePlotBooking_PlotNotFound(t *testing.T) {
	plotRepo := new(mockPlotRepository)
	recorder := new(mockStatusRecorder)
	log := new(mockLogger)

	plotRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	uc := NewUpdatePlotBookingUseCase(plotRepo, recorder, testTxManager(t), log)

	found, err := uc.Execute(context.Background(), UpdatePlotBookingCommand{PlotID: 99, Status: "booked"})

	require.NoError(t, err)
	assert.False(t, found)
}

package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlot(t *testing.T) {
	t.Run("defaults status to available", func(t *testing.T) {
		plot, err := NewPlot(1, "P001", 1200, "15 lakhs", "", "corner plot")
		require.NoError(t, err)
		assert.Equal(t, PlotStatusAvailable, plot.Status())
		assert.Equal(t, "P001", plot.Number())
		assert.Equal(t, "15 lakhs", plot.Price())
	})

	t.Run("rejects non-positive area", func(t *testing.T) {
		_, err := NewPlot(1, "P001", 0, "", PlotStatusAvailable, "")
		assert.EqualError(t, err, "plot area must be greater than zero")

		_, err = NewPlot(1, "P001", -10, "", PlotStatusAvailable, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewPlot(1, "P001", 100, "", PlotStatus("pending"), "")
		assert.Error(t, err)
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := NewPlot(1, "  ", 100, "", PlotStatusAvailable, "")
		assert.EqualError(t, err, "plot number is required")
	})
}

func TestPlotStatus_IsValid(t *testing.T) {
	for _, s := range []PlotStatus{PlotStatusAvailable, PlotStatusBooked, PlotStatusSold, PlotStatusReserved, PlotStatusBlocked} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, PlotStatus("pending").IsValid())
	assert.False(t, PlotStatus("").IsValid())
}

func TestPlotStatus_RequiresBooking(t *testing.T) {
	assert.True(t, PlotStatusBooked.RequiresBooking())
	assert.True(t, PlotStatusSold.RequiresBooking())
	assert.False(t, PlotStatusAvailable.RequiresBooking())
	assert.False(t, PlotStatusReserved.RequiresBooking())
	assert.False(t, PlotStatusBlocked.RequiresBooking())
}

func TestPlot_ChangeStatus(t *testing.T) {
	plot, err := NewPlot(1, "P001", 1200, "", PlotStatusAvailable, "")
	require.NoError(t, err)

	t.Run("changes to a different status", func(t *testing.T) {
		changed, err := plot.ChangeStatus(PlotStatusBooked)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, PlotStatusBooked, plot.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		changed, err := plot.ChangeStatus(PlotStatusBooked)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("any status can move to any other", func(t *testing.T) {
		changed, err := plot.ChangeStatus(PlotStatusSold)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = plot.ChangeStatus(PlotStatusAvailable)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := plot.ChangeStatus(PlotStatus("pending"))
		assert.Error(t, err)
	})
}

func TestPlot_ApplyBooking(t *testing.T) {
	userID := uint(7)

	t.Run("booked records user and timestamp", func(t *testing.T) {
		plot, err := NewPlot(1, "P001", 1200, "", PlotStatusAvailable, "")
		require.NoError(t, err)

		_, err = plot.ChangeStatus(PlotStatusBooked)
		require.NoError(t, err)
		plot.ApplyBooking(&userID)

		require.NotNil(t, plot.BookedBy())
		assert.Equal(t, userID, *plot.BookedBy())
		assert.NotNil(t, plot.BookedAt())
	})

	t.Run("returning to available clears booking metadata", func(t *testing.T) {
		plot, err := NewPlot(1, "P001", 1200, "", PlotStatusBooked, "")
		require.NoError(t, err)
		plot.ApplyBooking(&userID)
		require.NotNil(t, plot.BookedBy())

		_, err = plot.ChangeStatus(PlotStatusAvailable)
		require.NoError(t, err)
		plot.ApplyBooking(nil)

		assert.Nil(t, plot.BookedBy())
		assert.Nil(t, plot.BookedAt())
	})

	t.Run("sold without user keeps timestamp only", func(t *testing.T) {
		plot, err := NewPlot(1, "P001", 1200, "", PlotStatusSold, "")
		require.NoError(t, err)
		plot.ApplyBooking(nil)

		assert.Nil(t, plot.BookedBy())
		assert.NotNil(t, plot.BookedAt())
	})
}

func TestPlot_UpdateArea(t *testing.T) {
	plot, err := NewPlot(1, "P001", 1200, "", PlotStatusAvailable, "")
	require.NoError(t, err)

	require.NoError(t, plot.UpdateArea(1500))
	assert.Equal(t, float64(1500), plot.Area())

	assert.Error(t, plot.UpdateArea(0))
	assert.Error(t, plot.UpdateArea(-5))
}

func TestNewStatusChange(t *testing.T) {
	actor := uint(3)

	t.Run("valid transition", func(t *testing.T) {
		change, err := NewStatusChange(1, PlotStatusAvailable, PlotStatusBooked, &actor, "buyer deposit received")
		require.NoError(t, err)
		require.NotNil(t, change.PlotID())
		assert.Equal(t, uint(1), *change.PlotID())
		assert.Equal(t, PlotStatusAvailable, change.Previous())
		assert.Equal(t, PlotStatusBooked, change.Next())
	})

	t.Run("rejects unchanged status", func(t *testing.T) {
		_, err := NewStatusChange(1, PlotStatusBooked, PlotStatusBooked, nil, "")
		assert.EqualError(t, err, "status did not change")
	})

	t.Run("rejects zero plot ID", func(t *testing.T) {
		_, err := NewStatusChange(0, PlotStatusAvailable, PlotStatusBooked, nil, "")
		assert.Error(t, err)
	})
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBlocks() []BlockLayout {
	return []BlockLayout{
		{
			Name: "Block A",
			Plots: []PlotLayout{
				{PlotNumber: "P001", Area: 1200, Price: "15 lakhs", Status: "available"},
				{PlotNumber: "P002", Area: 1500, Status: "booked"},
			},
		},
		{
			Name:  "Block B",
			Plots: []PlotLayout{},
		},
	}
}

func TestValidatePayload(t *testing.T) {
	t.Run("accepts valid payload", func(t *testing.T) {
		assert.NoError(t, ValidatePayload(validBlocks()))
	})

	t.Run("accepts empty payload", func(t *testing.T) {
		assert.NoError(t, ValidatePayload(nil))
	})

	t.Run("rejects duplicate block names ignoring case", func(t *testing.T) {
		blocks := validBlocks()
		blocks[1].Name = "block a"
		err := ValidatePayload(blocks)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate block name")
	})

	t.Run("rejects duplicate plot numbers within a block ignoring case", func(t *testing.T) {
		blocks := validBlocks()
		blocks[0].Plots[1].PlotNumber = "p001"
		err := ValidatePayload(blocks)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate plot number")
	})

	t.Run("same plot number in different blocks is allowed", func(t *testing.T) {
		blocks := validBlocks()
		blocks[1].Plots = []PlotLayout{
			{PlotNumber: "P001", Area: 900, Status: "available"},
		}
		assert.NoError(t, ValidatePayload(blocks))
	})

	t.Run("rejects non-positive area", func(t *testing.T) {
		blocks := validBlocks()
		blocks[0].Plots[0].Area = 0
		assert.Error(t, ValidatePayload(blocks))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		blocks := validBlocks()
		blocks[0].Plots[0].Status = "pending"
		assert.Error(t, ValidatePayload(blocks))
	})

	t.Run("rejects missing plot number", func(t *testing.T) {
		blocks := validBlocks()
		blocks[0].Plots[0].PlotNumber = "   "
		assert.Error(t, ValidatePayload(blocks))
	})

	t.Run("rejects missing block name", func(t *testing.T) {
		blocks := validBlocks()
		blocks[0].Name = ""
		assert.Error(t, ValidatePayload(blocks))
	})
}

func TestNewConfiguration(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		config, err := NewConfiguration(1, "  launch layout  ", validBlocks(), true)
		require.NoError(t, err)
		assert.Equal(t, "launch layout", config.Name())
		assert.True(t, config.IsActive())
		assert.Len(t, config.Blocks(), 2)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		blocks := validBlocks()
		blocks[0].Plots[0].Area = -1
		_, err := NewConfiguration(1, "bad", blocks, false)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewConfiguration(1, "  ", validBlocks(), false)
		assert.Error(t, err)
	})
}

func TestConfiguration_ActivateDeactivate(t *testing.T) {
	config, err := NewConfiguration(1, "v1", validBlocks(), false)
	require.NoError(t, err)

	assert.False(t, config.IsActive())
	config.Activate()
	assert.True(t, config.IsActive())
	config.Deactivate()
	assert.False(t, config.IsActive())
}

package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock(t *testing.T) {
	t.Run("creates block with trimmed name", func(t *testing.T) {
		block, err := NewBlock(1, "  Block A  ", "north side")
		require.NoError(t, err)
		assert.Equal(t, uint(1), block.PropertyID())
		assert.Equal(t, "Block A", block.Name())
		assert.Equal(t, "north side", block.Description())
		assert.Zero(t, block.ID())
	})

	t.Run("rejects zero property ID", func(t *testing.T) {
		_, err := NewBlock(0, "Block A", "")
		assert.EqualError(t, err, "property ID is required")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewBlock(1, "   ", "")
		assert.EqualError(t, err, "block name is required")
	})
}

func TestBlock_NameKey(t *testing.T) {
	block, err := NewBlock(1, "Block A", "")
	require.NoError(t, err)
	assert.Equal(t, "block a", block.NameKey())
}

func TestBlock_SetID(t *testing.T) {
	block, err := NewBlock(1, "Block A", "")
	require.NoError(t, err)

	require.NoError(t, block.SetID(42))
	assert.Equal(t, uint(42), block.ID())

	assert.Error(t, block.SetID(43), "ID must be immutable once set")
}

func TestBlock_UpdateName(t *testing.T) {
	block, err := NewBlock(1, "Block A", "")
	require.NoError(t, err)

	t.Run("updates and trims", func(t *testing.T) {
		require.NoError(t, block.UpdateName(" Block B "))
		assert.Equal(t, "Block B", block.Name())
	})

	t.Run("rejects empty", func(t *testing.T) {
		assert.Error(t, block.UpdateName("  "))
	})
}

func TestReconstructBlock(t *testing.T) {
	now := time.Now()

	t.Run("rejects zero ID", func(t *testing.T) {
		_, err := ReconstructBlock(0, 1, "Block A", "", now, now)
		assert.Error(t, err)
	})

	t.Run("restores all fields", func(t *testing.T) {
		block, err := ReconstructBlock(5, 2, "Block A", "desc", now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(5), block.ID())
		assert.Equal(t, uint(2), block.PropertyID())
	})
}

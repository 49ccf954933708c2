// Package dto defines data transfer objects for the inventory application layer.
package dto

import (
	"time"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
)

// BlockDTO is the external representation of a block.
type BlockDTO struct {
	ID          uint      `json:"id"`
	PropertyID  uint      `json:"property_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlotDTO is the external representation of a plot.
type PlotDTO struct {
	ID          uint       `json:"id"`
	BlockID     uint       `json:"block_id"`
	PlotNumber  string     `json:"plot_number"`
	Area        float64    `json:"area"`
	Price       string     `json:"price,omitempty"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	BookedBy    *uint      `json:"booked_by,omitempty"`
	BookedAt    *time.Time `json:"booked_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BlockWithPlotsDTO is a block together with its plots.
type BlockWithPlotsDTO struct {
	BlockDTO
	Plots []PlotDTO `json:"plots"`
}

// StatusChangeDTO is the external representation of one audit entry.
type StatusChangeDTO struct {
	ID             uint      `json:"id"`
	PlotID         *uint     `json:"plot_id,omitempty"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedBy      *uint     `json:"changed_by,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BlockToDTO converts a block entity to its DTO form.
func BlockToDTO(block *inventory.Block) BlockDTO {
	return BlockDTO{
		ID:          block.ID(),
		PropertyID:  block.PropertyID(),
		Name:        block.Name(),
		Description: block.Description(),
		CreatedAt:   block.CreatedAt(),
		UpdatedAt:   block.UpdatedAt(),
	}
}

// PlotToDTO converts a plot entity to its DTO form.
func PlotToDTO(plot *inventory.Plot) PlotDTO {
	return PlotDTO{
		ID:          plot.ID(),
		BlockID:     plot.BlockID(),
		PlotNumber:  plot.Number(),
		Area:        plot.Area(),
		Price:       plot.Price(),
		Status:      plot.Status().String(),
		Description: plot.Description(),
		BookedBy:    plot.BookedBy(),
		BookedAt:    plot.BookedAt(),
		CreatedAt:   plot.CreatedAt(),
		UpdatedAt:   plot.UpdatedAt(),
	}
}

// PlotsToDTOs converts a slice of plot entities to DTO form.
func PlotsToDTOs(plots []*inventory.Plot) []PlotDTO {
	result := make([]PlotDTO, 0, len(plots))
	for _, plot := range plots {
		result = append(result, PlotToDTO(plot))
	}
	return result
}

// StatusChangeToDTO converts a status change entity to its DTO form.
func StatusChangeToDTO(change *inventory.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		ID:             change.ID(),
		PlotID:         change.PlotID(),
		PreviousStatus: change.Previous().String(),
		NewStatus:      change.Next().String(),
		ChangedBy:      change.ChangedBy(),
		Reason:         change.Reason(),
		CreatedAt:      change.CreatedAt(),
	}
}

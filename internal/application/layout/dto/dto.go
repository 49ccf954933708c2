// Package dto provides data transfer objects for the layout module.
package dto

import (
	"time"

	"github.com/plotwise-inc/plotwise/internal/domain/layout"
)

// ConfigurationDTO represents a full configuration including its payload
type ConfigurationDTO struct {
	ID         uint                 `json:"id"`
	PropertyID uint                 `json:"property_id"`
	Name       string               `json:"name"`
	Blocks     []layout.BlockLayout `json:"blocks"`
	Active     bool                 `json:"active"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// ConfigurationSummaryDTO represents a configuration without its payload,
// for listings
type ConfigurationSummaryDTO struct {
	ID         uint      `json:"id"`
	PropertyID uint      `json:"property_id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	BlockCount int       `json:"block_count"`
	PlotCount  int       `json:"plot_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ConfigurationToDTO converts a configuration entity to a full DTO
func ConfigurationToDTO(config *layout.Configuration) ConfigurationDTO {
	return ConfigurationDTO{
		ID:         config.ID(),
		PropertyID: config.PropertyID(),
		Name:       config.Name(),
		Blocks:     config.Blocks(),
		Active:     config.IsActive(),
		CreatedAt:  config.CreatedAt(),
		UpdatedAt:  config.UpdatedAt(),
	}
}

// ConfigurationToSummaryDTO converts a configuration entity to a summary DTO
func ConfigurationToSummaryDTO(config *layout.Configuration) ConfigurationSummaryDTO {
	plotCount := 0
	for _, block := range config.Blocks() {
		plotCount += len(block.Plots)
	}
	return ConfigurationSummaryDTO{
		ID:         config.ID(),
		PropertyID: config.PropertyID(),
		Name:       config.Name(),
		Active:     config.IsActive(),
		BlockCount: len(config.Blocks()),
		PlotCount:  plotCount,
		CreatedAt:  config.CreatedAt(),
		UpdatedAt:  config.UpdatedAt(),
	}
}

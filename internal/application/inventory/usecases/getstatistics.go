package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
)

// GetStatisticsCommand identifies the property to aggregate.
type GetStatisticsCommand struct {
	PropertyID uint
}

// GetStatisticsUseCase computes land statistics for a property. Aggregation
// happens in the database; this layer only validates input.
type GetStatisticsUseCase struct {
	statsRepo inventory.StatisticsRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase.
func NewGetStatisticsUseCase(statsRepo inventory.StatisticsRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{statsRepo: statsRepo}
}

// Execute returns the aggregated statistics. A property without blocks yields
// all-zero counters rather than an error.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, cmd GetStatisticsCommand) (*inventory.LandStatistics, error) {
	if cmd.PropertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}

	stats, err := uc.statsRepo.GetPropertyLandStatistics(ctx, cmd.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute land statistics: %w", err)
	}

	return stats, nil
}

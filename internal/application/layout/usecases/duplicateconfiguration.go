package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/layout/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// DuplicateConfigurationCommand identifies the snapshot to copy and names
// the copy.
type DuplicateConfigurationCommand struct {
	ConfigurationID uint
	Name            string
}

// DuplicateConfigurationUseCase copies a configuration payload under a new
// name. The copy is never active; it is a draft for later editing or apply.
type DuplicateConfigurationUseCase struct {
	configRepo layout.ConfigurationRepository
	logger     logger.Interface
}

// NewDuplicateConfigurationUseCase creates a new DuplicateConfigurationUseCase.
func NewDuplicateConfigurationUseCase(configRepo layout.ConfigurationRepository, log logger.Interface) *DuplicateConfigurationUseCase {
	return &DuplicateConfigurationUseCase{
		configRepo: configRepo,
		logger:     log,
	}
}

// Execute duplicates the configuration and returns the inactive copy.
func (uc *DuplicateConfigurationUseCase) Execute(ctx context.Context, cmd DuplicateConfigurationCommand) (*dto.ConfigurationDTO, error) {
	source, err := uc.configRepo.GetByID(ctx, cmd.ConfigurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	if source == nil {
		return nil, errors.NewNotFoundError("configuration not found")
	}

	copy, err := layout.NewConfiguration(source.PropertyID(), cmd.Name, source.Blocks(), false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.configRepo.Create(ctx, copy); err != nil {
		return nil, err
	}

	uc.logger.Infow("configuration duplicated",
		"source_id", source.ID(),
		"configuration_id", copy.ID(),
		"name", copy.Name(),
	)

	result := dto.ConfigurationToDTO(copy)
	return &result, nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// DeleteConfigurationCommand identifies the configuration to delete.
type DeleteConfigurationCommand struct {
	ConfigurationID uint
}

// DeleteConfigurationUseCase deletes a stored configuration. The active
// configuration is protected; deactivate it by applying or saving another
// one first.
type DeleteConfigurationUseCase struct {
	configRepo layout.ConfigurationRepository
	logger     logger.Interface
}

// NewDeleteConfigurationUseCase creates a new DeleteConfigurationUseCase.
func NewDeleteConfigurationUseCase(configRepo layout.ConfigurationRepository, log logger.Interface) *DeleteConfigurationUseCase {
	return &DeleteConfigurationUseCase{
		configRepo: configRepo,
		logger:     log,
	}
}

// Execute deletes the configuration.
func (uc *DeleteConfigurationUseCase) Execute(ctx context.Context, cmd DeleteConfigurationCommand) error {
	config, err := uc.configRepo.GetByID(ctx, cmd.ConfigurationID)
	if err != nil {
		return fmt.Errorf("failed to get configuration: %w", err)
	}
	if config == nil {
		return errors.NewNotFoundError("configuration not found")
	}
	if config.IsActive() {
		return errors.NewConflictError(layout.ErrConfigurationActive.Error())
	}

	deleted, err := uc.configRepo.Delete(ctx, cmd.ConfigurationID)
	if err != nil {
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	if !deleted {
		return errors.NewNotFoundError("configuration not found")
	}

	uc.logger.Infow("configuration deleted",
		"configuration_id", cmd.ConfigurationID,
		"property_id", config.PropertyID(),
	)

	return nil
}

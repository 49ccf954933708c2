package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/application/layout/dto"
	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
)

// GetConfigurationUseCase retrieves a single configuration with its payload.
type GetConfigurationUseCase struct {
	configRepo layout.ConfigurationRepository
}

// NewGetConfigurationUseCase creates a new GetConfigurationUseCase.
func NewGetConfigurationUseCase(configRepo layout.ConfigurationRepository) *GetConfigurationUseCase {
	return &GetConfigurationUseCase{configRepo: configRepo}
}

// Execute retrieves a configuration by ID.
func (uc *GetConfigurationUseCase) Execute(ctx context.Context, configurationID uint) (*dto.ConfigurationDTO, error) {
	config, err := uc.configRepo.GetByID(ctx, configurationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	if config == nil {
		return nil, errors.NewNotFoundError("configuration not found")
	}

	result := dto.ConfigurationToDTO(config)
	return &result, nil
}

// ListConfigurationsUseCase lists a property's configurations without their
// payloads.
type ListConfigurationsUseCase struct {
	configRepo layout.ConfigurationRepository
}

// NewListConfigurationsUseCase creates a new ListConfigurationsUseCase.
func NewListConfigurationsUseCase(configRepo layout.ConfigurationRepository) *ListConfigurationsUseCase {
	return &ListConfigurationsUseCase{configRepo: configRepo}
}

// Execute lists the property's configurations, newest first.
func (uc *ListConfigurationsUseCase) Execute(ctx context.Context, propertyID uint) ([]dto.ConfigurationSummaryDTO, error) {
	if propertyID == 0 {
		return nil, errors.NewValidationError("property ID is required")
	}

	configs, err := uc.configRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}

	result := make([]dto.ConfigurationSummaryDTO, 0, len(configs))
	for _, config := range configs {
		result = append(result, dto.ConfigurationToSummaryDTO(config))
	}

	return result, nil
}

package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
)

// ConfigurationMapper handles the conversion between configuration entities
// and persistence models, including JSON payload encoding.
type ConfigurationMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.ConfigurationModel) (*layout.Configuration, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *layout.Configuration) (*models.ConfigurationModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.ConfigurationModel) ([]*layout.Configuration, error)
}

// ConfigurationMapperImpl is the concrete implementation of ConfigurationMapper.
type ConfigurationMapperImpl struct{}

// NewConfigurationMapper creates a new configuration mapper.
func NewConfigurationMapper() ConfigurationMapper {
	return &ConfigurationMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *ConfigurationMapperImpl) ToEntity(model *models.ConfigurationModel) (*layout.Configuration, error) {
	if model == nil {
		return nil, nil
	}

	var blocks []layout.BlockLayout
	if len(model.Layout) > 0 {
		if err := json.Unmarshal(model.Layout, &blocks); err != nil {
			return nil, fmt.Errorf("failed to decode configuration layout: %w", err)
		}
	}

	entity, err := layout.ReconstructConfiguration(
		model.ID,
		model.PropertyID,
		model.Name,
		blocks,
		model.IsActive(),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct configuration entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *ConfigurationMapperImpl) ToModel(entity *layout.Configuration) (*models.ConfigurationModel, error) {
	if entity == nil {
		return nil, nil
	}

	payload, err := json.Marshal(entity.Blocks())
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration layout: %w", err)
	}

	model := &models.ConfigurationModel{
		ID:         entity.ID(),
		PropertyID: entity.PropertyID(),
		Name:       entity.Name(),
		Layout:     datatypes.JSON(payload),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
	model.SetActive(entity.IsActive())

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *ConfigurationMapperImpl) ToEntities(configModels []*models.ConfigurationModel) ([]*layout.Configuration, error) {
	entities := make([]*layout.Configuration, 0, len(configModels))
	for _, model := range configModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

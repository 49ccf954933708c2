package mappers

import (
	"fmt"
	"strings"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
)

// BlockMapper handles the conversion between block entities and persistence models.
type BlockMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.BlockModel) (*inventory.Block, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *inventory.Block) (*models.BlockModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.BlockModel) ([]*inventory.Block, error)
}

// BlockMapperImpl is the concrete implementation of BlockMapper.
type BlockMapperImpl struct{}

// NewBlockMapper creates a new block mapper.
func NewBlockMapper() BlockMapper {
	return &BlockMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *BlockMapperImpl) ToEntity(model *models.BlockModel) (*inventory.Block, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := inventory.ReconstructBlock(
		model.ID,
		model.PropertyID,
		model.Name,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct block entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *BlockMapperImpl) ToModel(entity *inventory.Block) (*models.BlockModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.BlockModel{
		ID:          entity.ID(),
		PropertyID:  entity.PropertyID(),
		Name:        entity.Name(),
		NameKey:     strings.ToLower(entity.Name()),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *BlockMapperImpl) ToEntities(blockModels []*models.BlockModel) ([]*inventory.Block, error) {
	entities := make([]*inventory.Block, 0, len(blockModels))
	for _, model := range blockModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

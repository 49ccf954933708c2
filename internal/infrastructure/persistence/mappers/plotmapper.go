package mappers

import (
	"fmt"
	"strings"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
)

// PlotMapper handles the conversion between plot entities and persistence models.
type PlotMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.PlotModel) (*inventory.Plot, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *inventory.Plot) (*models.PlotModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.PlotModel) ([]*inventory.Plot, error)
}

// PlotMapperImpl is the concrete implementation of PlotMapper.
type PlotMapperImpl struct{}

// NewPlotMapper creates a new plot mapper.
func NewPlotMapper() PlotMapper {
	return &PlotMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *PlotMapperImpl) ToEntity(model *models.PlotModel) (*inventory.Plot, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := inventory.ReconstructPlot(
		model.ID,
		model.BlockID,
		model.Number,
		model.Area,
		model.Price,
		model.Status,
		model.Description,
		model.BookedBy,
		model.BookedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plot entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *PlotMapperImpl) ToModel(entity *inventory.Plot) (*models.PlotModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlotModel{
		ID:          entity.ID(),
		BlockID:     entity.BlockID(),
		Number:      entity.Number(),
		NumberKey:   strings.ToLower(entity.Number()),
		Area:        entity.Area(),
		Price:       entity.Price(),
		Status:      entity.Status().String(),
		Description: entity.Description(),
		BookedBy:    entity.BookedBy(),
		BookedAt:    entity.BookedAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *PlotMapperImpl) ToEntities(plotModels []*models.PlotModel) ([]*inventory.Plot, error) {
	entities := make([]*inventory.Plot, 0, len(plotModels))
	for _, model := range plotModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

package mappers

import (
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/persistence/models"
)

// StatusHistoryMapper handles the conversion between status change entities
// and persistence models.
type StatusHistoryMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.StatusHistoryModel) (*inventory.StatusChange, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *inventory.StatusChange) (*models.StatusHistoryModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.StatusHistoryModel) ([]*inventory.StatusChange, error)
}

// StatusHistoryMapperImpl is the concrete implementation of StatusHistoryMapper.
type StatusHistoryMapperImpl struct{}

// NewStatusHistoryMapper creates a new status history mapper.
func NewStatusHistoryMapper() StatusHistoryMapper {
	return &StatusHistoryMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *StatusHistoryMapperImpl) ToEntity(model *models.StatusHistoryModel) (*inventory.StatusChange, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := inventory.ReconstructStatusChange(
		model.ID,
		model.PlotID,
		model.PreviousStatus,
		model.NewStatus,
		model.ChangedBy,
		model.Reason,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct status change entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *StatusHistoryMapperImpl) ToModel(entity *inventory.StatusChange) (*models.StatusHistoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.StatusHistoryModel{
		ID:             entity.ID(),
		PlotID:         entity.PlotID(),
		PreviousStatus: entity.Previous().String(),
		NewStatus:      entity.Next().String(),
		ChangedBy:      entity.ChangedBy(),
		Reason:         entity.Reason(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *StatusHistoryMapperImpl) ToEntities(historyModels []*models.StatusHistoryModel) ([]*inventory.StatusChange, error) {
	entities := make([]*inventory.StatusChange, 0, len(historyModels))
	for _, model := range historyModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

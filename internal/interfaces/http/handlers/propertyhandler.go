package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/usecases"
	"github.com/plotwise-inc/plotwise/internal/domain/layout"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
	"github.com/plotwise-inc/plotwise/internal/shared/utils"
)

// PropertyHandler exposes property-scoped inventory operations: the full
// hierarchy read, atomic bulk insert and statistics.
type PropertyHandler struct {
	listBlocksUC    *usecases.ListBlocksUseCase
	bulkInsertUC    *usecases.BulkInsertBlocksUseCase
	getStatisticsUC *usecases.GetStatisticsUseCase
	logger          logger.Interface
}

func NewPropertyHandler(
	listBlocksUC *usecases.ListBlocksUseCase,
	bulkInsertUC *usecases.BulkInsertBlocksUseCase,
	getStatisticsUC *usecases.GetStatisticsUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		listBlocksUC:    listBlocksUC,
		bulkInsertUC:    bulkInsertUC,
		getStatisticsUC: getStatisticsUC,
		logger:          logger.NewLogger(),
	}
}

type BulkInsertRequest struct {
	Blocks []layout.BlockLayout `json:"blocks" binding:"required,min=1"`
}

// ListBlocks handles GET /properties/:property_id/blocks
func (h *PropertyHandler) ListBlocks(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "property_id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listBlocksUC.Execute(c.Request.Context(), propertyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// BulkInsertBlocks handles POST /properties/:property_id/blocks/bulk
func (h *PropertyHandler) BulkInsertBlocks(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "property_id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BulkInsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk insert", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkInsertUC.Execute(c.Request.Context(), usecases.BulkInsertBlocksCommand{
		PropertyID: propertyID,
		Blocks:     req.Blocks,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Blocks created successfully")
}

// GetStatistics handles GET /properties/:property_id/statistics
func (h *PropertyHandler) GetStatistics(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "property_id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatisticsUC.Execute(c.Request.Context(), usecases.GetStatisticsCommand{
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/usecases"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
	"github.com/plotwise-inc/plotwise/internal/shared/utils"
)

// BlockHandler exposes block CRUD and block-scoped plot operations.
type BlockHandler struct {
	createBlockUC    *usecases.CreateBlockUseCase
	updateBlockUC    *usecases.UpdateBlockUseCase
	getBlockUC       *usecases.GetBlockUseCase
	deleteBlockUC    *usecases.SafeDeleteBlockUseCase
	createPlotUC     *usecases.CreatePlotUseCase
	listPlotsUC      *usecases.ListPlotsUseCase
	nextPlotNumberUC *usecases.NextPlotNumberUseCase
	logger           logger.Interface
}

func NewBlockHandler(
	createBlockUC *usecases.CreateBlockUseCase,
	updateBlockUC *usecases.UpdateBlockUseCase,
	getBlockUC *usecases.GetBlockUseCase,
	deleteBlockUC *usecases.SafeDeleteBlockUseCase,
	createPlotUC *usecases.CreatePlotUseCase,
	listPlotsUC *usecases.ListPlotsUseCase,
	nextPlotNumberUC *usecases.NextPlotNumberUseCase,
) *BlockHandler {
	return &BlockHandler{
		createBlockUC:    createBlockUC,
		updateBlockUC:    updateBlockUC,
		getBlockUC:       getBlockUC,
		deleteBlockUC:    deleteBlockUC,
		createPlotUC:     createPlotUC,
		listPlotsUC:      listPlotsUC,
		nextPlotNumberUC: nextPlotNumberUC,
		logger:           logger.NewLogger(),
	}
}

type CreateBlockRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type UpdateBlockRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreatePlotRequest struct {
	PlotNumber  string  `json:"plot_number" binding:"max=50"`
	Area        float64 `json:"area" binding:"required,gt=0"`
	Price       string  `json:"price"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

// CreateBlock handles POST /properties/:property_id/blocks
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "property_id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create block", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createBlockUC.Execute(c.Request.Context(), usecases.CreateBlockCommand{
		PropertyID:  propertyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Block created successfully")
}

// UpdateBlock handles PUT /blocks/:id
func (h *BlockHandler) UpdateBlock(c *gin.Context) {
	blockID, err := utils.ParseUintParam(c, "id", "block")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update block", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateBlockUC.Execute(c.Request.Context(), usecases.UpdateBlockCommand{
		BlockID:     blockID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetBlock handles GET /blocks/:id
func (h *BlockHandler) GetBlock(c *gin.Context) {
	blockID, err := utils.ParseUintParam(c, "id", "block")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getBlockUC.Execute(c.Request.Context(), blockID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteBlock handles DELETE /blocks/:id
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	blockID, err := utils.ParseUintParam(c, "id", "block")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.deleteBlockUC.Execute(c.Request.Context(), blockID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"deleted": deleted})
}

// CreatePlot handles POST /blocks/:id/plots
func (h *BlockHandler) CreatePlot(c *gin.Context) {
	blockID, err := utils.ParseUintParam(c, "id", "block")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plot", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlotUC.Execute(c.Request.Context(), usecases.CreatePlotCommand{
		BlockID:     blockID,
		PlotNumber:  req.PlotNumber,
		Area:        req.Area,
		Price:       req.Price,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plot created successfully")
}

// ListPlots handles GET /blocks/:id/plots
func (h *BlockHandler) ListPlots(c *gin.Context) {
	blockID, err := utils.ParseUintParam(c, "id", "block")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPlotsUC.Execute(c.Request.Context(), blockID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// NextPlotNumber handles GET /blocks/:id/next-plot-number
func (h *BlockHandler) NextPlotNumber(c *gin.Context) {
	blockID, err := utils.ParseUintParam(c, "id", "block")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	prefix := c.Query("prefix")

	number, err := h.nextPlotNumberUC.Execute(c.Request.Context(), blockID, prefix)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"plot_number": number})
}

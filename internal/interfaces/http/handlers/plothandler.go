package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/application/inventory/usecases"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
	"github.com/plotwise-inc/plotwise/internal/shared/utils"
)

// PlotHandler exposes plot-level operations: attribute updates, status
// transitions with audit, booking updates and the status history read.
type PlotHandler struct {
	getPlotUC           *usecases.GetPlotUseCase
	updatePlotUC        *usecases.UpdatePlotUseCase
	deletePlotUC        *usecases.DeletePlotUseCase
	updatePlotStatusUC  *usecases.UpdatePlotStatusUseCase
	updatePlotBookingUC *usecases.UpdatePlotBookingUseCase
	listStatusHistoryUC *usecases.ListPlotStatusHistoryUseCase
	logger              logger.Interface
}

func NewPlotHandler(
	getPlotUC *usecases.GetPlotUseCase,
	updatePlotUC *usecases.UpdatePlotUseCase,
	deletePlotUC *usecases.DeletePlotUseCase,
	updatePlotStatusUC *usecases.UpdatePlotStatusUseCase,
	updatePlotBookingUC *usecases.UpdatePlotBookingUseCase,
	listStatusHistoryUC *usecases.ListPlotStatusHistoryUseCase,
) *PlotHandler {
	return &PlotHandler{
		getPlotUC:           getPlotUC,
		updatePlotUC:        updatePlotUC,
		deletePlotUC:        deletePlotUC,
		updatePlotStatusUC:  updatePlotStatusUC,
		updatePlotBookingUC: updatePlotBookingUC,
		listStatusHistoryUC: listStatusHistoryUC,
		logger:              logger.NewLogger(),
	}
}

type UpdatePlotRequest struct {
	Area        *float64 `json:"area"`
	Price       *string  `json:"price"`
	Description *string  `json:"description"`
}

type UpdatePlotStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	ActorID *uint  `json:"actor_id"`
	Reason  string `json:"reason"`
}

type UpdatePlotBookingRequest struct {
	Status string `json:"status" binding:"required"`
	UserID *uint  `json:"user_id"`
}

// GetPlot handles GET /plots/:id
func (h *PlotHandler) GetPlot(c *gin.Context) {
	plotID, err := utils.ParseUintParam(c, "id", "plot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlotUC.Execute(c.Request.Context(), plotID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdatePlot handles PUT /plots/:id
func (h *PlotHandler) UpdatePlot(c *gin.Context) {
	plotID, err := utils.ParseUintParam(c, "id", "plot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plot", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlotUC.Execute(c.Request.Context(), usecases.UpdatePlotCommand{
		PlotID:      plotID,
		Area:        req.Area,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeletePlot handles DELETE /plots/:id
func (h *PlotHandler) DeletePlot(c *gin.Context) {
	plotID, err := utils.ParseUintParam(c, "id", "plot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.deletePlotUC.Execute(c.Request.Context(), plotID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"deleted": deleted})
}

// UpdatePlotStatus handles PATCH /plots/:id/status
func (h *PlotHandler) UpdatePlotStatus(c *gin.Context) {
	plotID, err := utils.ParseUintParam(c, "id", "plot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plot status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.updatePlotStatusUC.Execute(c.Request.Context(), usecases.UpdatePlotStatusCommand{
		PlotID:  plotID,
		Status:  req.Status,
		ActorID: req.ActorID,
		Reason:  req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !updated {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("plot not found"))
		return
	}

	utils.OKResponse(c, gin.H{"updated": updated})
}

// UpdatePlotBooking handles PATCH /plots/:id/booking
func (h *PlotHandler) UpdatePlotBooking(c *gin.Context) {
	plotID, err := utils.ParseUintParam(c, "id", "plot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlotBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plot booking", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.updatePlotBookingUC.Execute(c.Request.Context(), usecases.UpdatePlotBookingCommand{
		PlotID: plotID,
		Status: req.Status,
		UserID: req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !updated {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("plot not found"))
		return
	}

	utils.OKResponse(c, gin.H{"updated": updated})
}

// ListStatusHistory handles GET /plots/:id/status-history
func (h *PlotHandler) ListStatusHistory(c *gin.Context) {
	plotID, err := utils.ParseUintParam(c, "id", "plot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listStatusHistoryUC.Execute(c.Request.Context(), usecases.ListPlotStatusHistoryCommand{
		PlotID: plotID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

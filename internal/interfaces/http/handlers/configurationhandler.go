package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/application/layout/usecases"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
	"github.com/plotwise-inc/plotwise/internal/shared/utils"
)

// ConfigurationHandler exposes configuration snapshot operations: save,
// apply, duplicate and the read/delete surface.
type ConfigurationHandler struct {
	saveConfigUC      *usecases.SaveConfigurationUseCase
	applyConfigUC     *usecases.ApplyConfigurationUseCase
	duplicateConfigUC *usecases.DuplicateConfigurationUseCase
	getConfigUC       *usecases.GetConfigurationUseCase
	listConfigsUC     *usecases.ListConfigurationsUseCase
	deleteConfigUC    *usecases.DeleteConfigurationUseCase
	logger            logger.Interface
}

func NewConfigurationHandler(
	saveConfigUC *usecases.SaveConfigurationUseCase,
	applyConfigUC *usecases.ApplyConfigurationUseCase,
	duplicateConfigUC *usecases.DuplicateConfigurationUseCase,
	getConfigUC *usecases.GetConfigurationUseCase,
	listConfigsUC *usecases.ListConfigurationsUseCase,
	deleteConfigUC *usecases.DeleteConfigurationUseCase,
) *ConfigurationHandler {
	return &ConfigurationHandler{
		saveConfigUC:      saveConfigUC,
		applyConfigUC:     applyConfigUC,
		duplicateConfigUC: duplicateConfigUC,
		getConfigUC:       getConfigUC,
		listConfigsUC:     listConfigsUC,
		deleteConfigUC:    deleteConfigUC,
		logger:            logger.NewLogger(),
	}
}

type SaveConfigurationRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type DuplicateConfigurationRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// SaveConfiguration handles POST /properties/:property_id/configurations
func (h *ConfigurationHandler) SaveConfiguration(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "property_id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save configuration", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.saveConfigUC.Execute(c.Request.Context(), usecases.SaveConfigurationCommand{
		PropertyID: propertyID,
		Name:       req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Configuration saved successfully")
}

// ListConfigurations handles GET /properties/:property_id/configurations
func (h *ConfigurationHandler) ListConfigurations(c *gin.Context) {
	propertyID, err := utils.ParseUintParam(c, "property_id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listConfigsUC.Execute(c.Request.Context(), propertyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetConfiguration handles GET /configurations/:id
func (h *ConfigurationHandler) GetConfiguration(c *gin.Context) {
	configID, err := utils.ParseUintParam(c, "id", "configuration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getConfigUC.Execute(c.Request.Context(), configID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ApplyConfiguration handles POST /configurations/:id/apply
func (h *ConfigurationHandler) ApplyConfiguration(c *gin.Context) {
	configID, err := utils.ParseUintParam(c, "id", "configuration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.applyConfigUC.Execute(c.Request.Context(), usecases.ApplyConfigurationCommand{
		ConfigurationID: configID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DuplicateConfiguration handles POST /configurations/:id/duplicate
func (h *ConfigurationHandler) DuplicateConfiguration(c *gin.Context) {
	configID, err := utils.ParseUintParam(c, "id", "configuration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DuplicateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for duplicate configuration", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.duplicateConfigUC.Execute(c.Request.Context(), usecases.DuplicateConfigurationCommand{
		ConfigurationID: configID,
		Name:            req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Configuration duplicated successfully")
}

// DeleteConfiguration handles DELETE /configurations/:id
func (h *ConfigurationHandler) DeleteConfiguration(c *gin.Context) {
	configID, err := utils.ParseUintParam(c, "id", "configuration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteConfigUC.Execute(c.Request.Context(), usecases.DeleteConfigurationCommand{
		ConfigurationID: configID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"deleted": true})
}

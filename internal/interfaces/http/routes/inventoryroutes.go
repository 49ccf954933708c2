// Package routes registers route groups against the shared API group.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/interfaces/http/handlers"
)

// InventoryRouteConfig holds the handlers for inventory routes
type InventoryRouteConfig struct {
	BlockHandler    *handlers.BlockHandler
	PlotHandler     *handlers.PlotHandler
	PropertyHandler *handlers.PropertyHandler
}

// SetupInventoryRoutes configures property, block and plot routes
func SetupInventoryRoutes(api *gin.RouterGroup, config *InventoryRouteConfig) {
	properties := api.Group("/properties/:property_id")
	{
		properties.GET("/blocks", config.PropertyHandler.ListBlocks)
		properties.POST("/blocks", config.BlockHandler.CreateBlock)
		properties.POST("/blocks/bulk", config.PropertyHandler.BulkInsertBlocks)
		properties.GET("/statistics", config.PropertyHandler.GetStatistics)
	}

	blocks := api.Group("/blocks/:id")
	{
		blocks.GET("", config.BlockHandler.GetBlock)
		blocks.PUT("", config.BlockHandler.UpdateBlock)
		blocks.DELETE("", config.BlockHandler.DeleteBlock)
		blocks.GET("/plots", config.BlockHandler.ListPlots)
		blocks.POST("/plots", config.BlockHandler.CreatePlot)
		blocks.GET("/next-plot-number", config.BlockHandler.NextPlotNumber)
	}

	plots := api.Group("/plots/:id")
	{
		plots.GET("", config.PlotHandler.GetPlot)
		plots.PUT("", config.PlotHandler.UpdatePlot)
		plots.DELETE("", config.PlotHandler.DeletePlot)
		plots.PATCH("/status", config.PlotHandler.UpdatePlotStatus)
		plots.PATCH("/booking", config.PlotHandler.UpdatePlotBooking)
		plots.GET("/status-history", config.PlotHandler.ListStatusHistory)
	}
}

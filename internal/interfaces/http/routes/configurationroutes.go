package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/plotwise-inc/plotwise/internal/interfaces/http/handlers"
)

// ConfigurationRouteConfig holds the handler for configuration routes
type ConfigurationRouteConfig struct {
	Handler *handlers.ConfigurationHandler
}

// SetupConfigurationRoutes configures snapshot routes
func SetupConfigurationRoutes(api *gin.RouterGroup, config *ConfigurationRouteConfig) {
	properties := api.Group("/properties/:property_id")
	{
		properties.GET("/configurations", config.Handler.ListConfigurations)
		properties.POST("/configurations", config.Handler.SaveConfiguration)
	}

	configurations := api.Group("/configurations/:id")
	{
		configurations.GET("", config.Handler.GetConfiguration)
		configurations.DELETE("", config.Handler.DeleteConfiguration)
		configurations.POST("/apply", config.Handler.ApplyConfiguration)
		configurations.POST("/duplicate", config.Handler.DuplicateConfiguration)
	}
}

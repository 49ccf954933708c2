// Package http wires the application use cases into a gin HTTP surface.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	inventoryUC "github.com/plotwise-inc/plotwise/internal/application/inventory/usecases"
	layoutUC "github.com/plotwise-inc/plotwise/internal/application/layout/usecases"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/config"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/ratelimit"
	"github.com/plotwise-inc/plotwise/internal/infrastructure/repository"
	"github.com/plotwise-inc/plotwise/internal/interfaces/http/handlers"
	"github.com/plotwise-inc/plotwise/internal/interfaces/http/middleware"
	"github.com/plotwise-inc/plotwise/internal/interfaces/http/routes"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// Router holds the gin engine and the wired handlers
type Router struct {
	engine        *gin.Engine
	blockHandler  *handlers.BlockHandler
	plotHandler   *handlers.PlotHandler
	propHandler   *handlers.PropertyHandler
	configHandler *handlers.ConfigurationHandler
	limiter       ratelimit.RateLimiter
	cfg           *config.Config
	logger        logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	blockRepo := repository.NewBlockRepository(database, log)
	plotRepo := repository.NewPlotRepository(database, log)
	historyRepo := repository.NewStatusHistoryRepository(database, log)
	statsRepo := repository.NewStatisticsRepository(database, log)
	configRepo := repository.NewConfigurationRepository(database, log)
	txMgr := db.NewTransactionManager(database)

	createBlockUC := inventoryUC.NewCreateBlockUseCase(blockRepo, log)
	updateBlockUC := inventoryUC.NewUpdateBlockUseCase(blockRepo, log)
	getBlockUC := inventoryUC.NewGetBlockUseCase(blockRepo, plotRepo, log)
	listBlocksUC := inventoryUC.NewListBlocksUseCase(blockRepo, plotRepo, log)
	deleteBlockUC := inventoryUC.NewSafeDeleteBlockUseCase(blockRepo, txMgr, log)
	bulkInsertUC := inventoryUC.NewBulkInsertBlocksUseCase(blockRepo, plotRepo, txMgr, log)

	createPlotUC := inventoryUC.NewCreatePlotUseCase(blockRepo, plotRepo, txMgr, log)
	getPlotUC := inventoryUC.NewGetPlotUseCase(plotRepo)
	listPlotsUC := inventoryUC.NewListPlotsUseCase(blockRepo, plotRepo)
	updatePlotUC := inventoryUC.NewUpdatePlotUseCase(plotRepo, log)
	deletePlotUC := inventoryUC.NewDeletePlotUseCase(plotRepo, txMgr, log)
	updateStatusUC := inventoryUC.NewUpdatePlotStatusUseCase(plotRepo, historyRepo, txMgr, log)
	updateBookingUC := inventoryUC.NewUpdatePlotBookingUseCase(plotRepo, historyRepo, txMgr, log)
	nextNumberUC := inventoryUC.NewNextPlotNumberUseCase(blockRepo, plotRepo, log)
	statisticsUC := inventoryUC.NewGetStatisticsUseCase(statsRepo)
	statusHistoryUC := inventoryUC.NewListPlotStatusHistoryUseCase(plotRepo, historyRepo)

	saveConfigUC := layoutUC.NewSaveConfigurationUseCase(configRepo, blockRepo, plotRepo, txMgr, log)
	applyConfigUC := layoutUC.NewApplyConfigurationUseCase(configRepo, blockRepo, plotRepo, txMgr, log)
	duplicateConfigUC := layoutUC.NewDuplicateConfigurationUseCase(configRepo, log)
	getConfigUC := layoutUC.NewGetConfigurationUseCase(configRepo)
	listConfigsUC := layoutUC.NewListConfigurationsUseCase(configRepo)
	deleteConfigUC := layoutUC.NewDeleteConfigurationUseCase(configRepo, log)

	blockHandler := handlers.NewBlockHandler(
		createBlockUC, updateBlockUC, getBlockUC, deleteBlockUC,
		createPlotUC, listPlotsUC, nextNumberUC,
	)
	plotHandler := handlers.NewPlotHandler(
		getPlotUC, updatePlotUC, deletePlotUC,
		updateStatusUC, updateBookingUC, statusHistoryUC,
	)
	propHandler := handlers.NewPropertyHandler(listBlocksUC, bulkInsertUC, statisticsUC)
	configHandler := handlers.NewConfigurationHandler(
		saveConfigUC, applyConfigUC, duplicateConfigUC,
		getConfigUC, listConfigsUC, deleteConfigUC,
	)

	return &Router{
		engine:        engine,
		blockHandler:  blockHandler,
		plotHandler:   plotHandler,
		propHandler:   propHandler,
		configHandler: configHandler,
		limiter:       buildRateLimiter(cfg, log),
		cfg:           cfg,
		logger:        log,
	}
}

// buildRateLimiter picks the limiter backend from configuration. Without
// Redis the limiter is a no-op so single-instance dev setups still boot.
func buildRateLimiter(cfg *config.Config, log logger.Interface) ratelimit.RateLimiter {
	if !cfg.RateLimit.Enabled || !cfg.Redis.Enabled {
		return ratelimit.NewNoopRateLimiter()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Infow("redis rate limiter enabled", "addr", cfg.Redis.GetAddr())
	return ratelimit.NewRedisRateLimiter(client)
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	if r.cfg.RateLimit.Enabled {
		r.engine.Use(middleware.RateLimit(r.limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   r.cfg.RateLimit.RequestsPerHour,
		}, r.logger))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	routes.SetupInventoryRoutes(api, &routes.InventoryRouteConfig{
		BlockHandler:    r.blockHandler,
		PlotHandler:     r.plotHandler,
		PropertyHandler: r.propHandler,
	})
	routes.SetupConfigurationRoutes(api, &routes.ConfigurationRouteConfig{
		Handler: r.configHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

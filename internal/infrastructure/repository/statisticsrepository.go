package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// StatisticsRepositoryImpl implements inventory.StatisticsRepository with a
// single aggregate query over blocks LEFT JOIN plots, so a property whose
// blocks carry no plots reports zero counts and areas instead of failing.
type StatisticsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewStatisticsRepository creates a new statistics repository instance.
func NewStatisticsRepository(gdb *gorm.DB, log logger.Interface) inventory.StatisticsRepository {
	return &StatisticsRepositoryImpl{
		db:     gdb,
		logger: log,
	}
}

type statisticsRow struct {
	TotalBlocks     int64
	TotalPlots      int64
	AvailablePlots  int64
	BookedPlots     int64
	SoldPlots       int64
	ReservedPlots   int64
	TotalArea       float64
	AveragePlotSize float64
	MinPlotSize     float64
	MaxPlotSize     float64
}

const statisticsQuery = `
SELECT
	COUNT(DISTINCT b.id)                                             AS total_blocks,
	COUNT(p.id)                                                      AS total_plots,
	COALESCE(SUM(CASE WHEN p.status = 'available' THEN 1 ELSE 0 END), 0) AS available_plots,
	COALESCE(SUM(CASE WHEN p.status = 'booked'    THEN 1 ELSE 0 END), 0) AS booked_plots,
	COALESCE(SUM(CASE WHEN p.status = 'sold'      THEN 1 ELSE 0 END), 0) AS sold_plots,
	COALESCE(SUM(CASE WHEN p.status = 'reserved'  THEN 1 ELSE 0 END), 0) AS reserved_plots,
	COALESCE(SUM(p.area), 0)                                         AS total_area,
	COALESCE(AVG(p.area), 0)                                         AS average_plot_size,
	COALESCE(MIN(p.area), 0)                                         AS min_plot_size,
	COALESCE(MAX(p.area), 0)                                         AS max_plot_size
FROM blocks b
LEFT JOIN plots p ON p.block_id = b.id
WHERE b.property_id = ?`

// GetPropertyLandStatistics aggregates block/plot counts and area figures for
// one property. Read-only; relies on normal read consistency.
func (r *StatisticsRepositoryImpl) GetPropertyLandStatistics(ctx context.Context, propertyID uint) (*inventory.LandStatistics, error) {
	var row statisticsRow

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Raw(statisticsQuery, propertyID).Scan(&row).Error; err != nil {
		r.logger.Errorw("failed to aggregate land statistics", "property_id", propertyID, "error", err)
		return nil, fmt.Errorf("failed to aggregate land statistics: %w", err)
	}

	return &inventory.LandStatistics{
		TotalBlocks:     row.TotalBlocks,
		TotalPlots:      row.TotalPlots,
		AvailablePlots:  row.AvailablePlots,
		BookedPlots:     row.BookedPlots,
		SoldPlots:       row.SoldPlots,
		ReservedPlots:   row.ReservedPlots,
		TotalArea:       row.TotalArea,
		AveragePlotSize: row.AveragePlotSize,
		MinPlotSize:     row.MinPlotSize,
		MaxPlotSize:     row.MaxPlotSize,
	}, nil
}

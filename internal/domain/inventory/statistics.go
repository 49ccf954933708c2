package inventory

// LandStatistics aggregates block and plot figures for one property.
// A property with blocks but no plots reports zero counts and zero areas.
type LandStatistics struct {
	TotalBlocks     int64   `json:"total_blocks"`
	TotalPlots      int64   `json:"total_plots"`
	AvailablePlots  int64   `json:"available_plots"`
	BookedPlots     int64   `json:"booked_plots"`
	SoldPlots       int64   `json:"sold_plots"`
	ReservedPlots   int64   `json:"reserved_plots"`
	TotalArea       float64 `json:"total_area"`
	AveragePlotSize float64 `json:"average_plot_size"`
	MinPlotSize     float64 `json:"min_plot_size"`
	MaxPlotSize     float64 `json:"max_plot_size"`
}

package inventory

import "context"

// BlockRepository defines the interface for block persistence operations
type BlockRepository interface {
	// Create creates a new block
	Create(ctx context.Context, block *Block) error

	// Update updates an existing block
	Update(ctx context.Context, block *Block) error

	// GetByID retrieves a block by ID, nil when not found
	GetByID(ctx context.Context, id uint) (*Block, error)

	// ListByProperty retrieves all blocks of a property in creation order
	ListByProperty(ctx context.Context, propertyID uint) ([]*Block, error)

	// ExistsByName checks for a block with the given name in a property,
	// ignoring case
	ExistsByName(ctx context.Context, propertyID uint, name string) (bool, error)

	// SafeDelete deletes all plots of the block and then the block itself.
	// Returns false without error when the block does not exist.
	SafeDelete(ctx context.Context, id uint) (bool, error)

	// DeleteByProperty deletes all blocks of a property
	DeleteByProperty(ctx context.Context, propertyID uint) error
}

// PlotRepository defines the interface for plot persistence operations
type PlotRepository interface {
	// Create creates a new plot
	Create(ctx context.Context, plot *Plot) error

	// Update updates an existing plot
	Update(ctx context.Context, plot *Plot) error

	// Delete deletes a plot by ID, returning false when it does not exist
	Delete(ctx context.Context, id uint) (bool, error)

	// GetByID retrieves a plot by ID, nil when not found
	GetByID(ctx context.Context, id uint) (*Plot, error)

	// ListByBlock retrieves all plots of a block in creation order
	ListByBlock(ctx context.Context, blockID uint) ([]*Plot, error)

	// ExistsByNumber checks for a plot with the given number in a block,
	// ignoring case
	ExistsByNumber(ctx context.Context, blockID uint, number string) (bool, error)

	// NextNumber derives the next sequential plot number for a block given a
	// prefix (see NextPlotNumber in the application layer). Read-only.
	NextNumber(ctx context.Context, blockID uint, prefix string) (string, error)

	// DeleteByProperty deletes all plots belonging to blocks of a property
	DeleteByProperty(ctx context.Context, propertyID uint) error
}

// StatusRecorder appends status transition audit records. Implementations may
// fail when the audit store is unavailable; callers are expected to log and
// continue, never to abort the surrounding status update.
type StatusRecorder interface {
	Record(ctx context.Context, change *StatusChange) error
}

// StatusHistoryRepository defines the interface for the audit trail store
type StatusHistoryRepository interface {
	StatusRecorder

	// ListByPlot retrieves the transition history of a plot, newest first
	ListByPlot(ctx context.Context, plotID uint) ([]*StatusChange, error)
}

// StatisticsRepository computes aggregate figures over the live inventory
type StatisticsRepository interface {
	// GetPropertyLandStatistics aggregates block/plot counts and area figures
	// for one property
	GetPropertyLandStatistics(ctx context.Context, propertyID uint) (*LandStatistics, error)
}

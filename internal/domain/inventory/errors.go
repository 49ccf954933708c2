package inventory

import "errors"

var (
	// ErrBlockNotFound indicates the block was not found
	ErrBlockNotFound = errors.New("block not found")

	// ErrBlockNameExists indicates a block with the name already exists in the property
	ErrBlockNameExists = errors.New("block name already exists for this property")

	// ErrPlotNotFound indicates the plot was not found
	ErrPlotNotFound = errors.New("plot not found")

	// ErrPlotNumberExists indicates a plot with the number already exists in the block
	ErrPlotNumberExists = errors.New("plot number already exists in this block")

	// ErrInvalidArea indicates a non-positive plot area
	ErrInvalidArea = errors.New("plot area must be greater than zero")

	// ErrInvalidStatus indicates an unknown plot status value
	ErrInvalidStatus = errors.New("invalid plot status")
)

package inventory

import (
	"fmt"
	"strings"
	"time"
)

// Plot represents an individually sellable unit inside a block.
// Plot numbers are unique within a block ignoring case. Price is kept as a
// free-form string so listings like "15 lakhs" survive round trips.
type Plot struct {
	id          uint
	blockID     uint
	number      string
	area        float64
	price       string
	status      PlotStatus
	description string
	bookedBy    *uint
	bookedAt    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPlot creates a new plot within a block
func NewPlot(blockID uint, number string, area float64, price string, status PlotStatus, description string) (*Plot, error) {
	if blockID == 0 {
		return nil, fmt.Errorf("block ID is required")
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("plot number is required")
	}
	if area <= 0 {
		return nil, fmt.Errorf("plot area must be greater than zero")
	}
	if status == "" {
		status = PlotStatusAvailable
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid plot status: %s", status)
	}

	now := time.Now()
	return &Plot{
		blockID:     blockID,
		number:      number,
		area:        area,
		price:       price,
		status:      status,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPlot reconstructs a plot from persistence
func ReconstructPlot(
	id, blockID uint,
	number string,
	area float64,
	price string,
	status string,
	description string,
	bookedBy *uint,
	bookedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Plot, error) {
	if id == 0 {
		return nil, fmt.Errorf("plot ID cannot be zero")
	}
	if blockID == 0 {
		return nil, fmt.Errorf("block ID is required")
	}
	if number == "" {
		return nil, fmt.Errorf("plot number is required")
	}
	if area <= 0 {
		return nil, fmt.Errorf("plot area must be greater than zero")
	}

	plotStatus := PlotStatus(status)
	if !plotStatus.IsValid() {
		return nil, fmt.Errorf("invalid plot status: %s", status)
	}

	return &Plot{
		id:          id,
		blockID:     blockID,
		number:      number,
		area:        area,
		price:       price,
		status:      plotStatus,
		description: description,
		bookedBy:    bookedBy,
		bookedAt:    bookedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the plot ID
func (p *Plot) ID() uint {
	return p.id
}

// BlockID returns the owning block ID
func (p *Plot) BlockID() uint {
	return p.blockID
}

// Number returns the plot number
func (p *Plot) Number() string {
	return p.number
}

// NumberKey returns the lowercased plot number used for case-insensitive uniqueness
func (p *Plot) NumberKey() string {
	return strings.ToLower(p.number)
}

// Area returns the plot area
func (p *Plot) Area() float64 {
	return p.area
}

// Price returns the free-form price string
func (p *Plot) Price() string {
	return p.price
}

// Status returns the plot status
func (p *Plot) Status() PlotStatus {
	return p.status
}

// Description returns the plot description
func (p *Plot) Description() string {
	return p.description
}

// BookedBy returns the booking user ID, if any
func (p *Plot) BookedBy() *uint {
	return p.bookedBy
}

// BookedAt returns the booking timestamp, if any
func (p *Plot) BookedAt() *time.Time {
	return p.bookedAt
}

// CreatedAt returns when the plot was created
func (p *Plot) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the plot was last updated
func (p *Plot) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the plot ID (only for persistence layer use)
func (p *Plot) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plot ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plot ID cannot be zero")
	}
	p.id = id
	return nil
}

// ChangeStatus transitions the plot to a new status. Any status may move to
// any other status. Returns true when the status actually changed.
func (p *Plot) ChangeStatus(status PlotStatus) (bool, error) {
	if !status.IsValid() {
		return false, fmt.Errorf("invalid plot status: %s", status)
	}
	if p.status == status {
		return false, nil
	}
	p.status = status
	p.updatedAt = time.Now()
	return true, nil
}

// ApplyBooking records the acting user and booking timestamp for statuses
// that carry booking metadata, and clears both for all other statuses.
func (p *Plot) ApplyBooking(userID *uint) {
	if p.status.RequiresBooking() {
		now := time.Now()
		p.bookedBy = userID
		p.bookedAt = &now
	} else {
		p.bookedBy = nil
		p.bookedAt = nil
	}
	p.updatedAt = time.Now()
}

// UpdateArea updates the plot area
func (p *Plot) UpdateArea(area float64) error {
	if area <= 0 {
		return fmt.Errorf("plot area must be greater than zero")
	}
	if p.area == area {
		return nil
	}
	p.area = area
	p.updatedAt = time.Now()
	return nil
}

// UpdatePrice updates the free-form price string
func (p *Plot) UpdatePrice(price string) {
	if p.price == price {
		return
	}
	p.price = price
	p.updatedAt = time.Now()
}

// UpdateDescription updates the plot description
func (p *Plot) UpdateDescription(description string) {
	if p.description == description {
		return
	}
	p.description = description
	p.updatedAt = time.Now()
}

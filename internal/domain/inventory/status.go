package inventory

// PlotStatus represents the sale status of a plot
type PlotStatus string

const (
	// PlotStatusAvailable indicates the plot is open for sale
	PlotStatusAvailable PlotStatus = "available"
	// PlotStatusBooked indicates the plot has been booked by a buyer
	PlotStatusBooked PlotStatus = "booked"
	// PlotStatusSold indicates the sale has been completed
	PlotStatusSold PlotStatus = "sold"
	// PlotStatusReserved indicates the plot is held back from sale
	PlotStatusReserved PlotStatus = "reserved"
	// PlotStatusBlocked indicates the plot is administratively blocked
	PlotStatusBlocked PlotStatus = "blocked"
)

// IsValid checks if the plot status is a known value
func (s PlotStatus) IsValid() bool {
	switch s {
	case PlotStatusAvailable, PlotStatusBooked, PlotStatusSold, PlotStatusReserved, PlotStatusBlocked:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s PlotStatus) String() string {
	return string(s)
}

// RequiresBooking reports whether the status carries booking metadata
// (acting user and booking timestamp).
func (s PlotStatus) RequiresBooking() bool {
	return s == PlotStatusBooked || s == PlotStatusSold
}

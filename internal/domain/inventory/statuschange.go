package inventory

import (
	"fmt"
	"time"
)

// StatusChange is an immutable audit record of one plot status transition.
// The plot reference is nullable so the history survives plot deletion.
type StatusChange struct {
	id        uint
	plotID    *uint
	previous  PlotStatus
	next      PlotStatus
	changedBy *uint
	reason    string
	createdAt time.Time
}

// NewStatusChange creates an audit record for a transition. A record is only
// valid when the status actually changed.
func NewStatusChange(plotID uint, previous, next PlotStatus, changedBy *uint, reason string) (*StatusChange, error) {
	if plotID == 0 {
		return nil, fmt.Errorf("plot ID is required")
	}
	if !previous.IsValid() {
		return nil, fmt.Errorf("invalid previous status: %s", previous)
	}
	if !next.IsValid() {
		return nil, fmt.Errorf("invalid new status: %s", next)
	}
	if previous == next {
		return nil, fmt.Errorf("status did not change")
	}

	pid := plotID
	return &StatusChange{
		plotID:    &pid,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		reason:    reason,
		createdAt: time.Now(),
	}, nil
}

// ReconstructStatusChange reconstructs a status change record from persistence
func ReconstructStatusChange(id uint, plotID *uint, previous, next string, changedBy *uint, reason string, createdAt time.Time) (*StatusChange, error) {
	if id == 0 {
		return nil, fmt.Errorf("status change ID cannot be zero")
	}

	return &StatusChange{
		id:        id,
		plotID:    plotID,
		previous:  PlotStatus(previous),
		next:      PlotStatus(next),
		changedBy: changedBy,
		reason:    reason,
		createdAt: createdAt,
	}, nil
}

// ID returns the record ID
func (s *StatusChange) ID() uint {
	return s.id
}

// PlotID returns the plot reference, nil after plot deletion
func (s *StatusChange) PlotID() *uint {
	return s.plotID
}

// Previous returns the status before the transition
func (s *StatusChange) Previous() PlotStatus {
	return s.previous
}

// Next returns the status after the transition
func (s *StatusChange) Next() PlotStatus {
	return s.next
}

// ChangedBy returns the acting user ID, if supplied
func (s *StatusChange) ChangedBy() *uint {
	return s.changedBy
}

// Reason returns the free-text reason, if supplied
func (s *StatusChange) Reason() string {
	return s.reason
}

// CreatedAt returns when the transition happened
func (s *StatusChange) CreatedAt() time.Time {
	return s.createdAt
}

// SetID sets the record ID (only for persistence layer use)
func (s *StatusChange) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status change ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status change ID cannot be zero")
	}
	s.id = id
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// UpdatePlotBookingCommand carries the input for a booking status change.
type UpdatePlotBookingCommand struct {
	PlotID uint
	Status string
	UserID *uint
}

// UpdatePlotBookingUseCase sets a plot's status together with its booking
// metadata: booked and sold record the acting user and a booking timestamp,
// any other status clears both. Transitions are audited like every other
// status change.
type UpdatePlotBookingUseCase struct {
	plotRepo inventory.PlotRepository
	recorder inventory.StatusRecorder
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewUpdatePlotBookingUseCase creates a new UpdatePlotBookingUseCase.
func NewUpdatePlotBookingUseCase(
	plotRepo inventory.PlotRepository,
	recorder inventory.StatusRecorder,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *UpdatePlotBookingUseCase {
	return &UpdatePlotBookingUseCase{
		plotRepo: plotRepo,
		recorder: recorder,
		txMgr:    txMgr,
		logger:   log,
	}
}

// Execute performs the booking update. Returns false when the plot does not
// exist; callers must treat that as not-found, not as silent success.
func (uc *UpdatePlotBookingUseCase) Execute(ctx context.Context, cmd UpdatePlotBookingCommand) (bool, error) {
	newStatus := inventory.PlotStatus(cmd.Status)
	if !newStatus.IsValid() {
		return false, errors.NewValidationError(fmt.Sprintf("invalid plot status: %s", cmd.Status))
	}

	found := false

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		plot, err := uc.plotRepo.GetByID(txCtx, cmd.PlotID)
		if err != nil {
			return fmt.Errorf("failed to get plot: %w", err)
		}
		if plot == nil {
			return nil
		}
		found = true

		previous := plot.Status()
		changed, err := plot.ChangeStatus(newStatus)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		plot.ApplyBooking(cmd.UserID)

		if err := uc.plotRepo.Update(txCtx, plot); err != nil {
			return err
		}

		if changed {
			change, err := inventory.NewStatusChange(plot.ID(), previous, newStatus, cmd.UserID, "")
			if err != nil {
				uc.logger.Warnw("status change not recorded", "plot_id", plot.ID(), "error", err)
				return nil
			}
			if err := uc.recorder.Record(txCtx, change); err != nil {
				uc.logger.Warnw("status history write failed, continuing without audit entry",
					"plot_id", plot.ID(),
					"previous", previous.String(),
					"new", newStatus.String(),
					"error", err,
				)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

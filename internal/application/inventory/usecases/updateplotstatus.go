package usecases

import (
	"context"
	"fmt"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/errors"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// UpdatePlotStatusCommand carries the input for a status transition.
type UpdatePlotStatusCommand struct {
	PlotID  uint
	Status  string
	ActorID *uint
	Reason  string
}

// UpdatePlotStatusUseCase transitions a plot to a new status and appends an
// audit entry when the status actually changed. A failing audit write is
// logged and swallowed: inventory status correctness takes priority over
// completeness of the audit trail, so the status update never rolls back on
// account of the history store.
type UpdatePlotStatusUseCase struct {
	plotRepo inventory.PlotRepository
	recorder inventory.StatusRecorder
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewUpdatePlotStatusUseCase creates a new UpdatePlotStatusUseCase.
func NewUpdatePlotStatusUseCase(
	plotRepo inventory.PlotRepository,
	recorder inventory.StatusRecorder,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *UpdatePlotStatusUseCase {
	return &UpdatePlotStatusUseCase{
		plotRepo: plotRepo,
		recorder: recorder,
		txMgr:    txMgr,
		logger:   log,
	}
}

// Execute performs the transition. Returns false when the plot does not exist.
func (uc *UpdatePlotStatusUseCase) Execute(ctx context.Context, cmd UpdatePlotStatusCommand) (bool, error) {
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
		if !changed {
			return nil
		}

		if err := uc.plotRepo.Update(txCtx, plot); err != nil {
			return err
		}

		uc.recordTransition(txCtx, plot.ID(), previous, newStatus, cmd.ActorID, cmd.Reason)
		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// recordTransition appends the audit entry, degrading gracefully when the
// history store cannot take the write.
func (uc *UpdatePlotStatusUseCase) recordTransition(ctx context.Context, plotID uint, previous, next inventory.PlotStatus, actorID *uint, reason string) {
	change, err := inventory.NewStatusChange(plotID, previous, next, actorID, reason)
	if err != nil {
		uc.logger.Warnw("status change not recorded", "plot_id", plotID, "error", err)
		return
	}

	if err := uc.recorder.Record(ctx, change); err != nil {
		uc.logger.Warnw("status history write failed, continuing without audit entry",
			"plot_id", plotID,
			"previous", previous.String(),
			"new", next.String(),
			"error", err,
		)
	}
}

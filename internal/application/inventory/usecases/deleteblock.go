package usecases

import (
	"context"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// SafeDeleteBlockUseCase deletes a block and all of its plots in one
// transaction. Deleting a missing block is not an error; it reports false.
type SafeDeleteBlockUseCase struct {
	blockRepo inventory.BlockRepository
	txMgr     *db.TransactionManager
	logger    logger.Interface
}

// NewSafeDeleteBlockUseCase creates a new SafeDeleteBlockUseCase.
func NewSafeDeleteBlockUseCase(blockRepo inventory.BlockRepository, txMgr *db.TransactionManager, log logger.Interface) *SafeDeleteBlockUseCase {
	return &SafeDeleteBlockUseCase{
		blockRepo: blockRepo,
		txMgr:     txMgr,
		logger:    log,
	}
}

// Execute deletes the block's plots and then the block itself.
func (uc *SafeDeleteBlockUseCase) Execute(ctx context.Context, blockID uint) (bool, error) {
	var deleted bool

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = uc.blockRepo.SafeDelete(txCtx, blockID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to delete block", "id", blockID, "error", err)
		return false, err
	}

	return deleted, nil
}

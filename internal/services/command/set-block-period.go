package command

import (
	"context"
	"time"

	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// SetBlockPeriod installs a new cutoff through the settings manager, which
// recomputes and persists the turnover cache before storing the cutoff.
func (uc *UseCase) SetBlockPeriod(ctx context.Context, cutoff time.Time) error {
	logger := pkg.NewLoggerFromContext(ctx)

	if cutoff.Before(mmodel.MinMovementDate) {
		return pkg.ValidateBusinessError(cn.ErrDateBeforeLowerBound, "Settings")
	}

	logger.Infof("Installing block period %s", cutoff.Format(time.RFC3339))

	if err := uc.Settings.SetBlockPeriod(cutoff); err != nil {
		logger.Errorf("Error installing block period: %v", err)

		return err
	}

	logger.Infof("Block period installed at %s", cutoff.Format(time.RFC3339))

	return nil
}

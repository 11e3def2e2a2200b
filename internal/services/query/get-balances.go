package query

import (
	"context"
	"fmt"
	"time"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/turnover"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// GetBalances computes per-(item, location) balances at the target instant.
// Without a cutoff it scans all movements up to the target. With a cutoff it
// combines the frozen cache totals with an on-the-fly rollup of the window
// between cutoff and target; the target must not precede the cutoff.
func (uc *UseCase) GetBalances(ctx context.Context, target time.Time, storageID string) ([]mmodel.BalanceRow, error) {
	logger := pkg.NewLoggerFromContext(ctx)

	blockPeriod := uc.Settings.BlockPeriod()

	uc.Bus.Log(events.LogDebug, fmt.Sprintf("balance requested at %s (storage %q)", target.Format(time.RFC3339), storageID))

	if blockPeriod == nil {
		rows := uc.simpleBalances(target, storageID)

		uc.Bus.Log(events.LogInfo, fmt.Sprintf("balance computed without block period: %d rows", len(rows)))

		return rows, nil
	}

	if target.Before(*blockPeriod) {
		uc.Bus.Log(events.LogError, "balance target date precedes the block period")

		return nil, pkg.ValidateBusinessError(cn.ErrTargetBeforeBlockPeriod, "Balance")
	}

	cached := uc.Turnover.CachedFor(*blockPeriod)
	if len(cached) == 0 {
		uc.Bus.Log(events.LogDebug, "turnover cache empty, recomputing")

		if err := uc.Turnover.Compute(*blockPeriod); err != nil {
			uc.Bus.Log(events.LogError, fmt.Sprintf("turnover recompute failed: %v", err))

			return nil, err
		}

		cached = uc.Turnover.CachedFor(*blockPeriod)
	}

	recent, err := uc.Turnover.ForPeriod(*blockPeriod, target)
	if err != nil {
		logger.Errorf("Error rolling up the post-cutoff window: %v", err)

		return nil, err
	}

	rows := uc.mergeBalances(cached, recent, storageID, *blockPeriod)

	uc.Bus.Log(events.LogInfo, fmt.Sprintf("balance computed with block period: %d rows", len(rows)))

	return rows, nil
}

// simpleBalances sums signed quantities per pair across all movements up to the
// target instant.
func (uc *UseCase) simpleBalances(target time.Time, storageID string) []mmodel.BalanceRow {
	movements := uc.Repo.MovementsAll()

	var rows []mmodel.BalanceRow

	for _, item := range uc.Repo.ItemsAll() {
		for _, location := range uc.Repo.LocationsAll() {
			if storageID != "" && location.Code() != storageID {
				continue
			}

			var balance float64

			for _, m := range movements {
				if m.Item.Code() != item.Code() || m.Location.Code() != location.Code() {
					continue
				}

				if m.Date.After(target) {
					continue
				}

				balance += m.Quantity
			}

			rows = append(rows, mmodel.BalanceRow{
				NomenclatureID:   item.Code(),
				NomenclatureName: item.Name,
				StorageID:        location.Code(),
				StorageName:      location.Name,
				Balance:          balance,
				CalculationDate:  target,
			})
		}
	}

	return rows
}

// mergeBalances combines frozen cache totals with the post-cutoff rollup.
func (uc *UseCase) mergeBalances(cached []*mmodel.TurnoverRecord, recent []turnover.PairTurnover, storageID string, blockPeriod time.Time) []mmodel.BalanceRow {
	var rows []mmodel.BalanceRow

	for _, item := range uc.Repo.ItemsAll() {
		for _, location := range uc.Repo.LocationsAll() {
			if storageID != "" && location.Code() != storageID {
				continue
			}

			startBalance := 0.0

			for _, rec := range cached {
				if rec.NomenclatureID == item.Code() && rec.StorageID == location.Code() {
					startBalance = rec.Balance()
					break
				}
			}

			periodDebit, periodCredit := 0.0, 0.0

			for _, pair := range recent {
				if pair.NomenclatureID == item.Code() && pair.StorageID == location.Code() {
					periodDebit = pair.DebitTurnover
					periodCredit = pair.CreditTurnover

					break
				}
			}

			start := startBalance
			debit := periodDebit
			credit := periodCredit

			rows = append(rows, mmodel.BalanceRow{
				NomenclatureID:   item.Code(),
				NomenclatureName: item.Name,
				StorageID:        location.Code(),
				StorageName:      location.Name,
				Balance:          startBalance + periodDebit - periodCredit,
				StartBalance:     &start,
				PeriodDebit:      &debit,
				PeriodCredit:     &credit,
				CalculationDate:  blockPeriod,
			})
		}
	}

	return rows
}

package query

import (
	"context"
	"fmt"
	"time"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/shopspring/decimal"
)

// GetOSV generates the turnover-balance sheet for the window [start, end] at one
// location: opening balance, inflow, outflow and closing balance per item,
// expressed in the item's declared unit and rounded to three decimals.
func (uc *UseCase) GetOSV(ctx context.Context, start, end time.Time, storageID string) ([]mmodel.OSVRow, error) {
	if start.After(end) {
		return nil, pkg.ValidateBusinessError(cn.ErrStartAfterEnd, "OSV")
	}

	location := uc.findLocation(storageID)
	if location == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Location", storageID)
	}

	uc.Bus.Log(events.LogDebug, fmt.Sprintf("osv requested for [%s, %s] at %s",
		start.Format(time.RFC3339), end.Format(time.RFC3339), storageID))

	rows, err := uc.osvRows(uc.Repo.ItemsAll(), location, start, end)
	if err != nil {
		uc.Bus.Log(events.LogError, fmt.Sprintf("osv rollup failed: %v", err))

		return nil, err
	}

	uc.Bus.Log(events.LogInfo, fmt.Sprintf("osv generated: %d rows", len(rows)))

	return rows, nil
}

func (uc *UseCase) findLocation(code string) *mmodel.Location {
	for _, location := range uc.Repo.LocationsAll() {
		if location.Code() == code {
			return location
		}
	}

	return nil
}

// osvRows rolls the selected items up at one location. All accumulation happens
// in the root base unit; the result converts back into the item's declared unit.
func (uc *UseCase) osvRows(items []*mmodel.Item, location *mmodel.Location, start, end time.Time) ([]mmodel.OSVRow, error) {
	movements := uc.Repo.MovementsAll()

	rows := make([]mmodel.OSVRow, 0, len(items))

	for _, item := range items {
		var opening, income, outcome float64

		for _, m := range movements {
			if m.Item.Code() != item.Code() || m.Location.Code() != location.Code() {
				continue
			}

			rootQuantity, err := item.Unit.ToRoot(m.Quantity)
			if err != nil {
				return nil, pkg.ValidateBusinessError(err, "Unit", item.Unit.Code())
			}

			switch {
			case m.Date.Before(start):
				opening += rootQuantity
			case !m.Date.After(end):
				if rootQuantity > 0 {
					income += rootQuantity
				} else {
					outcome += -rootQuantity
				}
			}
		}

		closing := opening + income - outcome

		displayOpening, err := item.Unit.FromRoot(opening)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Unit", item.Unit.Code())
		}

		displayIncome, err := item.Unit.FromRoot(income)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Unit", item.Unit.Code())
		}

		displayOutcome, err := item.Unit.FromRoot(outcome)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Unit", item.Unit.Code())
		}

		displayClosing, err := item.Unit.FromRoot(closing)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Unit", item.Unit.Code())
		}

		rows = append(rows, mmodel.OSVRow{
			NomenclatureID:   item.Code(),
			NomenclatureName: item.Name,
			UnitName:         item.Unit.Name,
			StartBalance:     roundDisplay(displayOpening),
			Income:           roundDisplay(displayIncome),
			Outcome:          roundDisplay(displayOutcome),
			EndBalance:       roundDisplay(displayClosing),
		})
	}

	return rows, nil
}

// roundDisplay rounds a display quantity to three decimals.
func roundDisplay(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

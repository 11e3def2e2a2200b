package query

import (
	"context"
	"time"

	"github.com/foodops/stockbook/internal/filter"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// GetOSVFiltered drives the turnover-balance sheet from a filter list. The
// "period" and "storage" pseudo-fields select the window and the location and
// are mandatory; every remaining filter narrows the item sequence before rollup.
func (uc *UseCase) GetOSVFiltered(ctx context.Context, inputs []mmodel.FilterInput) ([]mmodel.OSVRow, error) {
	filters, err := filter.FromInputs(inputs)
	if err != nil {
		return nil, err
	}

	var (
		start, end *time.Time
		storageID  string
		remaining  []filter.Filter
	)

	for _, f := range filters {
		switch f.Field {
		case "period":
			instant, err := pkg.ParseInstant(f.Value)
			if err != nil {
				return nil, pkg.ValidateBusinessError(err, "OSV", f.Value)
			}

			switch f.Operator {
			case filter.OpGreater, filter.OpGreaterEqual:
				t := instant
				start = &t
			case filter.OpLess, filter.OpLessEqual:
				t := instant
				end = &t
			case filter.OpEquals:
				t := instant
				start, end = &t, &t
			default:
				return nil, pkg.ValidateBusinessError(cn.ErrInvalidFilterOperator, "OSV", f.Operator.String())
			}
		case "storage":
			if f.Operator != filter.OpEquals {
				return nil, pkg.ValidateBusinessError(cn.ErrMissingStorageFilter, "OSV")
			}

			storageID = f.Value
		default:
			remaining = append(remaining, f)
		}
	}

	if start == nil || end == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrMissingPeriodFilter, "OSV")
	}

	if storageID == "" {
		return nil, pkg.ValidateBusinessError(cn.ErrMissingStorageFilter, "OSV")
	}

	if start.After(*end) {
		return nil, pkg.ValidateBusinessError(cn.ErrStartAfterEnd, "OSV")
	}

	location := uc.findLocation(storageID)
	if location == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Location", storageID)
	}

	selected := filter.Apply(uc.Repo.All(repository.Items), remaining)

	items := make([]*mmodel.Item, 0, len(selected))
	for _, e := range selected {
		if item, ok := e.(*mmodel.Item); ok {
			items = append(items, item)
		}
	}

	return uc.osvRows(items, location, *start, *end)
}

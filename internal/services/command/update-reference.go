package command

import (
	"context"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// ChangeReference builds a replacement entity from the merged old and new
// attributes, sweeps every back-reference through the bus, then commits the
// replacement in the bucket.
func (uc *UseCase) ChangeReference(ctx context.Context, kind, code string, input *mmodel.ReferenceInput) (mmodel.Entity, error) {
	logger := pkg.NewLoggerFromContext(ctx)

	bucket, err := parseReferenceKind(kind)
	if err != nil {
		return nil, err
	}

	old := uc.Repo.Find(bucket, code)
	if old == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, string(bucket), code)
	}

	logger.Infof("Trying to change %s %s: %#v", bucket, code, input)

	replacement, err := uc.mergeReference(bucket, old, input)
	if err != nil {
		return nil, err
	}

	if err := uc.Bus.Fire(events.UpdateDependencies, events.UpdateDependenciesPayload{Old: old, New: replacement}); err != nil {
		logger.Errorf("Error sweeping dependencies for %s %s: %v", bucket, code, err)

		return nil, err
	}

	if err := uc.Repo.Replace(bucket, old, replacement); err != nil {
		return nil, pkg.ValidateBusinessError(err, string(bucket), code)
	}

	if err := uc.Bus.Fire(events.ChangeReference, events.ReferencePayload{Entity: replacement}); err != nil {
		// Undo the commit and the sweep so the caller observes no mutation.
		_ = uc.Repo.Replace(bucket, replacement, old)
		_ = uc.Bus.Fire(events.UpdateDependencies, events.UpdateDependenciesPayload{Old: replacement, New: old})

		logger.Errorf("Error notifying reference change: %v", err)

		return nil, err
	}

	logger.Infof("Successfully changed %s %s", bucket, code)

	return replacement, nil
}

// mergeReference builds the replacement entity: fields present in the input win,
// absent fields carry over from the existing entity. The unique code never changes.
func (uc *UseCase) mergeReference(bucket repository.Kind, old mmodel.Entity, input *mmodel.ReferenceInput) (mmodel.Entity, error) {
	switch existing := old.(type) {
	case *mmodel.Group:
		name := existing.Name
		if input.Name != nil {
			name = *input.Name
		}

		group, err := mmodel.NewGroup(existing.UniqueCode, name)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Group", "name")
		}

		return group, nil
	case *mmodel.Unit:
		name := existing.Name
		if input.Name != nil {
			name = *input.Name
		}

		factor := existing.Factor
		if input.Factor != nil {
			factor = *input.Factor
		}

		base := existing.Base

		if input.BaseID != nil {
			if *input.BaseID == "" {
				base = nil
			} else {
				found, err := uc.findUnit(*input.BaseID)
				if err != nil {
					return nil, err
				}

				base = found
			}
		}

		unit, err := mmodel.NewUnit(existing.UniqueCode, name, factor, base)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Unit", "name")
		}

		return unit, nil
	case *mmodel.Item:
		name := existing.Name
		if input.Name != nil {
			name = *input.Name
		}

		group := existing.Group

		if input.GroupID != nil {
			found, err := uc.findGroup(*input.GroupID)
			if err != nil {
				return nil, err
			}

			group = found
		}

		unit := existing.Unit

		if input.UnitID != nil {
			found, err := uc.findUnit(*input.UnitID)
			if err != nil {
				return nil, err
			}

			unit = found
		}

		item, err := mmodel.NewItem(existing.UniqueCode, name, group, unit)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Item", "name")
		}

		return item, nil
	case *mmodel.Location:
		name := existing.Name
		if input.Name != nil {
			name = *input.Name
		}

		address := existing.Address
		if input.Address != nil {
			address = *input.Address
		}

		location, err := mmodel.NewLocation(existing.UniqueCode, name, address)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Location", "name")
		}

		return location, nil
	default:
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", string(bucket))
	}
}

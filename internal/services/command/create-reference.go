package command

import (
	"context"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// CreateReference validates the kind, constructs the entity resolving reference
// fields by code, appends it to the matching bucket and notifies the bus. A
// fresh unique code is assigned when none is provided; a provided code that is
// already taken is refused.
func (uc *UseCase) CreateReference(ctx context.Context, kind string, input *mmodel.ReferenceInput) (mmodel.Entity, error) {
	logger := pkg.NewLoggerFromContext(ctx)

	bucket, err := parseReferenceKind(kind)
	if err != nil {
		return nil, err
	}

	logger.Infof("Trying to create %s reference: %#v", bucket, input)

	code := input.UniqueCode
	if code == "" {
		code = pkg.NewUniqueCode()
	} else if !pkg.IsUniqueCode(code) {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidUniqueCode, string(bucket), code)
	}

	entity, err := uc.buildReference(bucket, code, input)
	if err != nil {
		return nil, err
	}

	if err := uc.Repo.Append(bucket, entity); err != nil {
		return nil, pkg.ValidateBusinessError(err, string(bucket), code)
	}

	if err := uc.Bus.Fire(events.AddReference, events.ReferencePayload{Entity: entity}); err != nil {
		_ = uc.Repo.Remove(bucket, entity)

		logger.Errorf("Error notifying reference creation: %v", err)

		return nil, err
	}

	logger.Infof("Successfully created %s %s", bucket, entity.Code())

	return entity, nil
}

// buildReference constructs a reference entity of the bucket's kind from the
// attribute map, resolving referenced codes through the repository.
func (uc *UseCase) buildReference(bucket repository.Kind, code string, input *mmodel.ReferenceInput) (mmodel.Entity, error) {
	name := ""
	if input.Name != nil {
		name = *input.Name
	}

	switch bucket {
	case repository.Groups:
		group, err := mmodel.NewGroup(code, name)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Group", "name")
		}

		return group, nil
	case repository.Units:
		factor := int64(1)
		if input.Factor != nil {
			factor = *input.Factor
		}

		var base *mmodel.Unit

		if input.BaseID != nil {
			found, err := uc.findUnit(*input.BaseID)
			if err != nil {
				return nil, err
			}

			base = found
		}

		unit, err := mmodel.NewUnit(code, name, factor, base)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Unit", "name")
		}

		return unit, nil
	case repository.Items:
		if input.GroupID == nil {
			return nil, pkg.ValidateBusinessError(cn.ErrMissingRequiredField, "Item", "group_id")
		}

		if input.UnitID == nil {
			return nil, pkg.ValidateBusinessError(cn.ErrMissingRequiredField, "Item", "unit_id")
		}

		group, err := uc.findGroup(*input.GroupID)
		if err != nil {
			return nil, err
		}

		unit, err := uc.findUnit(*input.UnitID)
		if err != nil {
			return nil, err
		}

		item, err := mmodel.NewItem(code, name, group, unit)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Item", "name")
		}

		return item, nil
	case repository.Locations:
		address := ""
		if input.Address != nil {
			address = *input.Address
		}

		location, err := mmodel.NewLocation(code, name, address)
		if err != nil {
			return nil, pkg.ValidateBusinessError(err, "Location", "name")
		}

		return location, nil
	default:
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", string(bucket))
	}
}

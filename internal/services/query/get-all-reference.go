package query

import (
	"context"

	"github.com/foodops/stockbook/internal/filter"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// GetAll returns a bucket's entities in stable order.
func (uc *UseCase) GetAll(ctx context.Context, kind string) ([]mmodel.Entity, error) {
	bucket, ok := repository.ParseKind(kind)
	if !ok {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", kind)
	}

	return uc.Repo.All(bucket), nil
}

// GetAllFiltered returns a bucket's entities narrowed by a filter list,
// preserving order.
func (uc *UseCase) GetAllFiltered(ctx context.Context, kind string, inputs []mmodel.FilterInput) ([]mmodel.Entity, error) {
	records, err := uc.GetAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	filters, err := filter.FromInputs(inputs)
	if err != nil {
		return nil, err
	}

	return filter.Apply(records, filters), nil
}

// GetByCode returns one entity of a bucket by its unique code.
func (uc *UseCase) GetByCode(ctx context.Context, kind, code string) (mmodel.Entity, error) {
	bucket, ok := repository.ParseKind(kind)
	if !ok {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", kind)
	}

	entity := uc.Repo.Find(bucket, code)
	if entity == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrEntityNotFound, kind, code)
	}

	return entity, nil
}

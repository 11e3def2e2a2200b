package query

import (
	"context"

	"github.com/foodops/stockbook/internal/filter"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
)

// FilterDescriptor lists the filterable fields of one kind and the operator set.
type FilterDescriptor struct {
	Kind      string   `json:"kind"`
	Fields    []string `json:"fields"`
	Operators []string `json:"operators"`
}

// DescribeFilters returns the filterable fields and operators for a kind.
func (uc *UseCase) DescribeFilters(ctx context.Context, kind string) (*FilterDescriptor, error) {
	if _, ok := repository.ParseKind(kind); !ok {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", kind)
	}

	fields := filter.Fields(kind)
	if fields == nil {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidReferenceKind, "Reference", kind)
	}

	operators := make([]string, 0, len(filter.Operators()))
	for _, op := range filter.Operators() {
		operators = append(operators, op.String())
	}

	return &FilterDescriptor{
		Kind:      kind,
		Fields:    fields,
		Operators: operators,
	}, nil
}

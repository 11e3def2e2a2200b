package mmodel

import (
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// MaxUnitDepth bounds the parent chain walk. Valid trees stay far below it;
// reaching it means a cycle or a corrupted chain.
const MaxUnitDepth = 32

// Unit is a unit of measure. Units form a rooted tree per measurement family:
// the root has no base and factor 1, and a non-root unit's factor is the count
// of base units per this unit.
type Unit struct {
	UniqueCode string `json:"unique_code"`
	Name       string `json:"name"`
	Factor     int64  `json:"factor"`
	Base       *Unit  `json:"base,omitempty"`
}

// Code returns the unique code of the unit.
func (u *Unit) Code() string { return u.UniqueCode }

// EntityKind returns the kind name of the unit.
func (u *Unit) EntityKind() string { return "unit" }

// NewUnit creates a unit of measure with a positive factor and an optional base unit.
func NewUnit(code, name string, factor int64, base *Unit) (*Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cn.ErrMissingRequiredField
	}

	if factor <= 0 {
		return nil, cn.ErrInvalidUnitFactor
	}

	return &Unit{
		UniqueCode: code,
		Name:       name,
		Factor:     factor,
		Base:       base,
	}, nil
}

// Root follows base links until the unit with no base and returns it.
func (u *Unit) Root() (*Unit, error) {
	current := u
	for depth := 0; depth < MaxUnitDepth; depth++ {
		if current.Base == nil {
			return current, nil
		}

		current = current.Base
	}

	return nil, cn.ErrUnitChainTooDeep
}

// ToRoot converts a quantity expressed in this unit into the root base unit.
func (u *Unit) ToRoot(quantity float64) (float64, error) {
	current, result := u, quantity
	for depth := 0; depth < MaxUnitDepth; depth++ {
		if current.Base == nil {
			return result, nil
		}

		result *= float64(current.Factor)
		current = current.Base
	}

	return 0, cn.ErrUnitChainTooDeep
}

// FromRoot converts a quantity expressed in the root base unit into this unit.
func (u *Unit) FromRoot(quantity float64) (float64, error) {
	current, result := u, quantity
	for depth := 0; depth < MaxUnitDepth; depth++ {
		if current.Base == nil {
			return result, nil
		}

		result /= float64(current.Factor)
		current = current.Base
	}

	return 0, cn.ErrUnitChainTooDeep
}

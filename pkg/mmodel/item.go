package mmodel

import (
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// Item is a catalog item ("nomenclature"): a named entry bound to a group and a
// declared unit of measure.
type Item struct {
	UniqueCode string `json:"unique_code"`
	Name       string `json:"name"`
	Group      *Group `json:"group"`
	Unit       *Unit  `json:"unit"`
}

// Code returns the unique code of the item.
func (i *Item) Code() string { return i.UniqueCode }

// EntityKind returns the kind name of the item.
func (i *Item) EntityKind() string { return "item" }

// NewItem creates an item bound to an existing group and unit.
func NewItem(code, name string, group *Group, unit *Unit) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cn.ErrMissingRequiredField
	}

	if group == nil || unit == nil {
		return nil, cn.ErrMissingRequiredField
	}

	return &Item{
		UniqueCode: code,
		Name:       name,
		Group:      group,
		Unit:       unit,
	}, nil
}

package mmodel

import (
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// Group is an item group reference entity.
type Group struct {
	UniqueCode string `json:"unique_code"`
	Name       string `json:"name"`
}

// Code returns the unique code of the group.
func (g *Group) Code() string { return g.UniqueCode }

// EntityKind returns the kind name of the group.
func (g *Group) EntityKind() string { return "group" }

// NewGroup creates a group with a trimmed, non-empty name.
func NewGroup(code, name string) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cn.ErrMissingRequiredField
	}

	return &Group{
		UniqueCode: code,
		Name:       name,
	}, nil
}

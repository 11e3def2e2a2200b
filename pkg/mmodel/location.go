package mmodel

import (
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// Location is a storage location reference entity.
type Location struct {
	UniqueCode string `json:"unique_code"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
}

// Code returns the unique code of the location.
func (l *Location) Code() string { return l.UniqueCode }

// EntityKind returns the kind name of the location.
func (l *Location) EntityKind() string { return "location" }

// NewLocation creates a location with a trimmed, non-empty name and an optional address.
func NewLocation(code, name, address string) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cn.ErrMissingRequiredField
	}

	return &Location{
		UniqueCode: code,
		Name:       name,
		Address:    strings.TrimSpace(address),
	}, nil
}

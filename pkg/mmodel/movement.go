package mmodel

import (
	"math"
	"strings"
	"time"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// MinMovementDate is the lower bound for movement timestamps.
var MinMovementDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Movement is a signed stock movement: positive quantity is an inflow, negative
// is an outflow. The quantity is expressed in the item's declared unit; the Unit
// label is informational and not checked against it.
type Movement struct {
	UniqueCode string    `json:"unique_code"`
	Date       time.Time `json:"date"`
	Item       *Item     `json:"item"`
	Location   *Location `json:"location"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
}

// Code returns the unique code of the movement.
func (m *Movement) Code() string { return m.UniqueCode }

// EntityKind returns the kind name of the movement.
func (m *Movement) EntityKind() string { return "movement" }

// NewMovement creates a movement with a finite, non-zero quantity and a timestamp
// no earlier than 1900-01-01.
func NewMovement(code string, date time.Time, item *Item, location *Location, quantity float64, unit string) (*Movement, error) {
	if item == nil || location == nil {
		return nil, cn.ErrMissingRequiredField
	}

	if quantity == 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nil, cn.ErrInvalidQuantity
	}

	if date.Before(MinMovementDate) {
		return nil, cn.ErrDateBeforeLowerBound
	}

	return &Movement{
		UniqueCode: code,
		Date:       date,
		Item:       item,
		Location:   location,
		Quantity:   quantity,
		Unit:       strings.TrimSpace(unit),
	}, nil
}

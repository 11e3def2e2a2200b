package mmodel

import (
	"math"
	"testing"
	"time"

	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T) (*Item, *Location) {
	t.Helper()

	_, kilogram := newTestUnits(t)

	group, err := NewGroup("44444444444444444444444444444444", "Ingredients")
	require.NoError(t, err)

	item, err := NewItem("55555555555555555555555555555555", "flour", group, kilogram)
	require.NoError(t, err)

	location, err := NewLocation("66666666666666666666666666666666", "main", "")
	require.NoError(t, err)

	return item, location
}

func TestNewMovement(t *testing.T) {
	item, location := newTestItem(t)

	validDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		date        time.Time
		quantity    float64
		expectedErr error
	}{
		{
			name:     "success - inflow",
			date:     validDate,
			quantity: 0.1,
		},
		{
			name:     "success - outflow",
			date:     validDate,
			quantity: -0.05,
		},
		{
			name:        "failure - zero quantity",
			date:        validDate,
			quantity:    0,
			expectedErr: cn.ErrInvalidQuantity,
		},
		{
			name:        "failure - NaN quantity",
			date:        validDate,
			quantity:    math.NaN(),
			expectedErr: cn.ErrInvalidQuantity,
		},
		{
			name:        "failure - infinite quantity",
			date:        validDate,
			quantity:    math.Inf(1),
			expectedErr: cn.ErrInvalidQuantity,
		},
		{
			name:        "failure - timestamp before 1900",
			date:        time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC),
			quantity:    1,
			expectedErr: cn.ErrDateBeforeLowerBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movement, err := NewMovement("77777777777777777777777777777777", tt.date, item, location, tt.quantity, "kg")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, movement)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.quantity, movement.Quantity)
		})
	}
}

func TestNewMovementMissingReferences(t *testing.T) {
	item, location := newTestItem(t)
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewMovement("77777777777777777777777777777777", date, nil, location, 1, "")
	assert.ErrorIs(t, err, cn.ErrMissingRequiredField)

	_, err = NewMovement("77777777777777777777777777777777", date, item, nil, 1, "")
	assert.ErrorIs(t, err, cn.ErrMissingRequiredField)
}

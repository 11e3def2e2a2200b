package mmodel

import (
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// RecipeComponent binds an item and a unit with a positive integer value inside
// a recipe's composition list.
type RecipeComponent struct {
	Item  *Item `json:"item"`
	Unit  *Unit `json:"unit"`
	Value int64 `json:"value"`
}

// Recipe is a cooking recipe with ordered steps and a composition of items.
type Recipe struct {
	UniqueCode  string             `json:"unique_code"`
	Name        string             `json:"name"`
	CookingTime string             `json:"cooking_time"`
	Portions    int64              `json:"portions"`
	Steps       []string           `json:"steps"`
	Composition []*RecipeComponent `json:"composition"`
}

// Code returns the unique code of the recipe.
func (r *Recipe) Code() string { return r.UniqueCode }

// EntityKind returns the kind name of the recipe.
func (r *Recipe) EntityKind() string { return "recipe" }

// NewRecipeComponent creates a component with a positive value.
func NewRecipeComponent(item *Item, unit *Unit, value int64) (*RecipeComponent, error) {
	if item == nil || unit == nil {
		return nil, cn.ErrMissingRequiredField
	}

	if value <= 0 {
		return nil, cn.ErrInvalidQuantity
	}

	return &RecipeComponent{
		Item:  item,
		Unit:  unit,
		Value: value,
	}, nil
}

// NewRecipe creates a recipe with a positive portion count.
func NewRecipe(code, name, cookingTime string, portions int64, steps []string, composition []*RecipeComponent) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cn.ErrMissingRequiredField
	}

	if portions <= 0 {
		return nil, cn.ErrInvalidQuantity
	}

	return &Recipe{
		UniqueCode:  code,
		Name:        name,
		CookingTime: strings.TrimSpace(cookingTime),
		Portions:    portions,
		Steps:       steps,
		Composition: composition,
	}, nil
}

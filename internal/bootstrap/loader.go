package bootstrap

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Seed DTOs mirror the bootstrap recipe file. Ids are adopted verbatim as
// unique codes by the created entities.

type rangeDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  int64  `json:"value"`
	BaseID string `json:"base_id,omitempty"`
}

type categoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type nomenclatureDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GroupID string `json:"group_id"`
	RangeID string `json:"range_id"`
}

type componentDTO struct {
	NomenclatureID string `json:"nomenclature_id"`
	RangeID        string `json:"range_id"`
	Value          int64  `json:"value"`
}

type storageDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type transactionDTO struct {
	ID             string  `json:"id,omitempty"`
	Date           string  `json:"date"`
	NomenclatureID string  `json:"nomenclature_id"`
	StorageID      string  `json:"storage_id"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit,omitempty"`
}

type receiptDTO struct {
	Name          string            `json:"name"`
	CookingTime   string            `json:"cooking_time"`
	Portions      int64             `json:"portions"`
	Steps         []string          `json:"steps"`
	Ranges        []rangeDTO        `json:"ranges"`
	Categories    []categoryDTO     `json:"categories"`
	Nomenclatures []nomenclatureDTO `json:"nomenclatures"`
	Composition   []componentDTO    `json:"composition"`
	Storages      []storageDTO      `json:"storages,omitempty"`
	Transactions  []transactionDTO  `json:"transactions,omitempty"`
}

type recipeFile struct {
	DefaultReceipt *receiptDTO `json:"default_receipt"`
}

// LoadRecipeFile seeds the repository from the bootstrap recipe file: units
// first, then groups, items, the recipe itself, and finally any demo storages
// and transactions the file carries. A missing file is not an error; the first
// return reports whether anything was loaded.
func LoadRecipeFile(path string, repo *repository.Repository) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "RecipeFile", path)
	}

	var file recipeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return false, pkg.ValidateInternalError(err, "RecipeFile")
	}

	if file.DefaultReceipt == nil {
		return false, nil
	}

	receipt := file.DefaultReceipt

	units := make(map[string]*mmodel.Unit, len(receipt.Ranges))

	for _, dto := range receipt.Ranges {
		var base *mmodel.Unit
		if dto.BaseID != "" {
			base = units[dto.BaseID]
		}

		unit, err := mmodel.NewUnit(dto.ID, dto.Name, dto.Value, base)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Unit", dto.Name)
		}

		if err := repo.Append(repository.Units, unit); err != nil {
			return false, pkg.ValidateBusinessError(err, "Unit", dto.ID)
		}

		units[dto.ID] = unit
	}

	groups := make(map[string]*mmodel.Group, len(receipt.Categories))

	for _, dto := range receipt.Categories {
		group, err := mmodel.NewGroup(dto.ID, dto.Name)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Group", dto.Name)
		}

		if err := repo.Append(repository.Groups, group); err != nil {
			return false, pkg.ValidateBusinessError(err, "Group", dto.ID)
		}

		groups[dto.ID] = group
	}

	items := make(map[string]*mmodel.Item, len(receipt.Nomenclatures))

	for _, dto := range receipt.Nomenclatures {
		group, ok := groups[dto.GroupID]
		if !ok {
			return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Group", dto.GroupID)
		}

		unit, ok := units[dto.RangeID]
		if !ok {
			return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Unit", dto.RangeID)
		}

		item, err := mmodel.NewItem(dto.ID, dto.Name, group, unit)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Item", dto.Name)
		}

		if err := repo.Append(repository.Items, item); err != nil {
			return false, pkg.ValidateBusinessError(err, "Item", dto.ID)
		}

		items[dto.ID] = item
	}

	composition := make([]*mmodel.RecipeComponent, 0, len(receipt.Composition))

	for _, dto := range receipt.Composition {
		item, ok := items[dto.NomenclatureID]
		if !ok {
			return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Item", dto.NomenclatureID)
		}

		unit, ok := units[dto.RangeID]
		if !ok {
			return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Unit", dto.RangeID)
		}

		component, err := mmodel.NewRecipeComponent(item, unit, dto.Value)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Recipe", receipt.Name)
		}

		composition = append(composition, component)
	}

	recipe, err := mmodel.NewRecipe(pkg.NewUniqueCode(), receipt.Name, receipt.CookingTime, receipt.Portions, receipt.Steps, composition)
	if err != nil {
		return false, pkg.ValidateBusinessError(err, "Recipe", receipt.Name)
	}

	if err := repo.Append(repository.Recipes, recipe); err != nil {
		return false, pkg.ValidateBusinessError(err, "Recipe", recipe.Code())
	}

	locations := make(map[string]*mmodel.Location, len(receipt.Storages))

	for _, dto := range receipt.Storages {
		location, err := mmodel.NewLocation(dto.ID, dto.Name, dto.Address)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Location", dto.Name)
		}

		if err := repo.Append(repository.Locations, location); err != nil {
			return false, pkg.ValidateBusinessError(err, "Location", dto.ID)
		}

		locations[dto.ID] = location
	}

	for _, dto := range receipt.Transactions {
		item, ok := items[dto.NomenclatureID]
		if !ok {
			return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Item", dto.NomenclatureID)
		}

		location, ok := locations[dto.StorageID]
		if !ok {
			return false, pkg.ValidateBusinessError(cn.ErrEntityNotFound, "Location", dto.StorageID)
		}

		date, err := pkg.ParseInstant(dto.Date)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Movement", dto.Date)
		}

		code := dto.ID
		if code == "" {
			code = pkg.NewUniqueCode()
		}

		movement, err := mmodel.NewMovement(code, date, item, location, dto.Quantity, dto.Unit)
		if err != nil {
			return false, pkg.ValidateBusinessError(err, "Movement", code)
		}

		if err := repo.Append(repository.Movements, movement); err != nil {
			return false, pkg.ValidateBusinessError(err, "Movement", code)
		}
	}

	return true, nil
}

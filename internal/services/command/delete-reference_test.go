package command

import (
	"context"
	"testing"

	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteReferenceSucceedsWhenUnreferenced(t *testing.T) {
	uc := newTestUseCase(t)

	location, err := uc.CreateReference(context.Background(), "location", &mmodel.ReferenceInput{Name: str("spare")})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteReference(context.Background(), "location", location.Code()))

	assert.Nil(t, uc.Repo.Find(repository.Locations, location.Code()))
}

func TestDeleteReferenceVetoedByRecipe(t *testing.T) {
	uc := newTestUseCase(t)

	_, flour, _ := seedItems(t, uc)

	unit := flour.Unit

	component, err := mmodel.NewRecipeComponent(flour, unit, 100)
	require.NoError(t, err)

	recipe, err := mmodel.NewRecipe(pkg.NewUniqueCode(), "Pancakes", "25 min", 4, []string{"mix"}, []*mmodel.RecipeComponent{component})
	require.NoError(t, err)
	require.NoError(t, uc.Repo.Append(repository.Recipes, recipe))

	err = uc.DeleteReference(context.Background(), "item", flour.Code())

	var veto pkg.DependencyVetoError

	require.ErrorAs(t, err, &veto)
	assert.Contains(t, err.Error(), "Pancakes")

	// The veto aborts the whole operation; the item is still present.
	assert.NotNil(t, uc.Repo.Find(repository.Items, flour.Code()))
}

func TestDeleteReferenceVetoedByItem(t *testing.T) {
	uc := newTestUseCase(t)

	group, flour, _ := seedItems(t, uc)

	err := uc.DeleteReference(context.Background(), "group", group.Code())

	var veto pkg.DependencyVetoError

	require.ErrorAs(t, err, &veto)
	assert.Equal(t, flour.EntityKind(), veto.HolderKind)
	assert.NotNil(t, uc.Repo.Find(repository.Groups, group.Code()))
}

func TestDeleteReferenceAllowedAfterHolderRemoved(t *testing.T) {
	uc := newTestUseCase(t)

	group, flour, sugar := seedItems(t, uc)

	require.NoError(t, uc.DeleteReference(context.Background(), "item", flour.Code()))
	require.NoError(t, uc.DeleteReference(context.Background(), "item", sugar.Code()))

	// With both holders gone their subscribers are unregistered too, so the
	// group deletion passes the dependency check.
	require.NoError(t, uc.DeleteReference(context.Background(), "group", group.Code()))

	assert.Nil(t, uc.Repo.Find(repository.Groups, group.Code()))
}

func TestDeleteReferenceNotFound(t *testing.T) {
	uc := newTestUseCase(t)

	err := uc.DeleteReference(context.Background(), "group", "ffffffffffffffffffffffffffffffff")

	var notFound pkg.EntityNotFoundError

	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, cn.ErrEntityNotFound.Error(), notFound.Code)
}

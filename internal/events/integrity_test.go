package events

import (
	"testing"

	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) (*mmodel.Group, *mmodel.Unit, *mmodel.Item, *mmodel.Location, *mmodel.Movement, *mmodel.Recipe) {
	t.Helper()

	group, err := mmodel.NewGroup("11111111111111111111111111111111", "Ingredients")
	require.NoError(t, err)

	gram, err := mmodel.NewUnit("22222222222222222222222222222222", "gram", 1, nil)
	require.NoError(t, err)

	item, err := mmodel.NewItem("33333333333333333333333333333333", "flour", group, gram)
	require.NoError(t, err)

	location, err := mmodel.NewLocation("44444444444444444444444444444444", "main", "")
	require.NoError(t, err)

	movement, err := mmodel.NewMovement("55555555555555555555555555555555", mmodel.MinMovementDate, item, location, 10, "g")
	require.NoError(t, err)

	component, err := mmodel.NewRecipeComponent(item, gram, 100)
	require.NoError(t, err)

	recipe, err := mmodel.NewRecipe("66666666666666666666666666666666", "Pancakes", "25 min", 4,
		[]string{"mix", "fry"}, []*mmodel.RecipeComponent{component})
	require.NoError(t, err)

	return group, gram, item, location, movement, recipe
}

func TestUpdateDependenciesRewritesBackReferences(t *testing.T) {
	group, _, item, _, _, _ := seedCatalog(t)

	renamed, err := mmodel.NewGroup(group.Code(), "Dry goods")
	require.NoError(t, err)

	sub := NewIntegrity(item)

	require.NoError(t, sub.Handle(UpdateDependencies, UpdateDependenciesPayload{Old: group, New: renamed}))

	assert.Equal(t, "Dry goods", item.Group.Name)
	assert.Same(t, renamed, item.Group)
}

func TestUpdateDependenciesRewritesRecipeComponents(t *testing.T) {
	_, _, item, _, _, recipe := seedCatalog(t)

	replacement, err := mmodel.NewItem(item.Code(), "rye flour", item.Group, item.Unit)
	require.NoError(t, err)

	sub := NewIntegrity(recipe)

	require.NoError(t, sub.Handle(UpdateDependencies, UpdateDependenciesPayload{Old: item, New: replacement}))

	assert.Same(t, replacement, recipe.Composition[0].Item)
}

func TestUpdateDependenciesIgnoresUnrelatedEntities(t *testing.T) {
	group, _, item, location, _, _ := seedCatalog(t)

	other, err := mmodel.NewGroup("77777777777777777777777777777777", "Tools")
	require.NoError(t, err)

	renamed, err := mmodel.NewGroup(other.Code(), "Hardware")
	require.NoError(t, err)

	sub := NewIntegrity(item)
	require.NoError(t, sub.Handle(UpdateDependencies, UpdateDependenciesPayload{Old: other, New: renamed}))

	assert.Same(t, group, item.Group)

	locationSub := NewIntegrity(location)
	require.NoError(t, locationSub.Handle(UpdateDependencies, UpdateDependenciesPayload{Old: other, New: renamed}))
}

func TestCheckDependenciesVetoesWhenReferenced(t *testing.T) {
	_, _, item, _, _, recipe := seedCatalog(t)

	sub := NewIntegrity(recipe)

	err := sub.Handle(CheckDependencies, CheckDependenciesPayload{Target: item})

	var veto pkg.DependencyVetoError

	require.ErrorAs(t, err, &veto)
	assert.Equal(t, recipe.Code(), veto.HolderCode)
	assert.Contains(t, err.Error(), "Pancakes")
}

func TestCheckDependenciesVetoesMovementReferences(t *testing.T) {
	_, _, item, location, movement, _ := seedCatalog(t)

	sub := NewIntegrity(movement)

	var veto pkg.DependencyVetoError

	require.ErrorAs(t, sub.Handle(CheckDependencies, CheckDependenciesPayload{Target: item}), &veto)
	require.ErrorAs(t, sub.Handle(CheckDependencies, CheckDependenciesPayload{Target: location}), &veto)
}

func TestCheckDependenciesPassesWhenUnreferenced(t *testing.T) {
	_, _, item, _, _, _ := seedCatalog(t)

	other, err := mmodel.NewGroup("77777777777777777777777777777777", "Tools")
	require.NoError(t, err)

	sub := NewIntegrity(item)

	assert.NoError(t, sub.Handle(CheckDependencies, CheckDependenciesPayload{Target: other}))
}

func TestIntegrityIgnoresLogEvents(t *testing.T) {
	_, _, item, _, _, _ := seedCatalog(t)

	sub := NewIntegrity(item)

	assert.NoError(t, sub.Handle(LogError, LogPayload{Message: "boom"}))
	assert.NoError(t, sub.Handle(AddReference, ReferencePayload{Entity: item}))
}

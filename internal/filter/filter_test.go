package filter

import (
	"testing"

	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItems(t *testing.T) []mmodel.Entity {
	t.Helper()

	ingredients, err := mmodel.NewGroup("11111111111111111111111111111111", "Ingredients")
	require.NoError(t, err)

	tools, err := mmodel.NewGroup("22222222222222222222222222222222", "Tools")
	require.NoError(t, err)

	gram, err := mmodel.NewUnit("33333333333333333333333333333333", "gram", 1, nil)
	require.NoError(t, err)

	piece, err := mmodel.NewUnit("44444444444444444444444444444444", "piece", 1, nil)
	require.NoError(t, err)

	flour, err := mmodel.NewItem("55555555555555555555555555555555", "flour", ingredients, gram)
	require.NoError(t, err)

	sugar, err := mmodel.NewItem("66666666666666666666666666666666", "sugar", ingredients, gram)
	require.NoError(t, err)

	whisk, err := mmodel.NewItem("77777777777777777777777777777777", "whisk", tools, piece)
	require.NoError(t, err)

	return []mmodel.Entity{flour, sugar, whisk}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected Operator
	}{
		{input: "EQUALS", expected: OpEquals},
		{input: "equals", expected: OpEquals},
		{input: "like", expected: OpLike},
		{input: "NOT_EQUAL", expected: OpNotEquals},
		{input: "not_equals", expected: OpNotEquals},
		{input: "greaterEqual", expected: OpGreaterEqual},
		{input: "GREATER_EQUAL", expected: OpGreaterEqual},
		{input: " less ", expected: OpLess},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := ParseOperator(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestParseOperatorUnknown(t *testing.T) {
	_, err := ParseOperator("between")

	var validation pkg.ValidationError

	assert.ErrorAs(t, err, &validation)
}

func TestApplyNestedLike(t *testing.T) {
	items := seedItems(t)

	result := Apply(items, []Filter{{Field: "group/name", Value: "ingred", Operator: OpLike}})

	require.Len(t, result, 2)
	assert.Equal(t, "flour", result[0].(*mmodel.Item).Name)
	assert.Equal(t, "sugar", result[1].(*mmodel.Item).Name)
}

func TestApplyIsIdempotent(t *testing.T) {
	items := seedItems(t)
	filters := []Filter{{Field: "group/name", Value: "Ingredients", Operator: OpEquals}}

	once := Apply(items, filters)
	twice := Apply(once, filters)

	assert.Equal(t, once, twice)
}

func TestApplyConjunction(t *testing.T) {
	items := seedItems(t)

	result := Apply(items, []Filter{
		{Field: "group/name", Value: "Ingredients", Operator: OpEquals},
		{Field: "name", Value: "sug", Operator: OpLike},
	})

	require.Len(t, result, 1)
	assert.Equal(t, "sugar", result[0].(*mmodel.Item).Name)
}

func TestApplyEmptyFilterListReturnsInput(t *testing.T) {
	items := seedItems(t)

	assert.Equal(t, items, Apply(items, nil))
	assert.Empty(t, Apply(nil, []Filter{{Field: "name", Value: "x", Operator: OpEquals}}))
}

func TestApplyMissingFieldIsFalse(t *testing.T) {
	items := seedItems(t)

	assert.Empty(t, Apply(items, []Filter{{Field: "flavor", Value: "sweet", Operator: OpEquals}}))
	assert.Empty(t, Apply(items, []Filter{{Field: "group/missing/name", Value: "x", Operator: OpEquals}}))
}

func TestCompareNumeric(t *testing.T) {
	gram, err := mmodel.NewUnit("33333333333333333333333333333333", "gram", 1, nil)
	require.NoError(t, err)

	kilogram, err := mmodel.NewUnit("44444444444444444444444444444444", "kilogram", 1000, gram)
	require.NoError(t, err)

	units := []mmodel.Entity{gram, kilogram}

	result := Apply(units, []Filter{{Field: "factor", Value: "500", Operator: OpGreater}})

	require.Len(t, result, 1)
	assert.Equal(t, "kilogram", result[0].(*mmodel.Unit).Name)
}

func TestCompareStringFallback(t *testing.T) {
	items := seedItems(t)

	// "flour" < "sugar" < "whisk" lexicographically; neither parses as a number.
	result := Apply(items, []Filter{{Field: "name", Value: "sugar", Operator: OpGreater}})

	require.Len(t, result, 1)
	assert.Equal(t, "whisk", result[0].(*mmodel.Item).Name)
}

func TestFromInputs(t *testing.T) {
	filters, err := FromInputs([]mmodel.FilterInput{
		{FieldName: "name", Value: "flour", Operator: "equals"},
		{FieldName: "group/name", Value: "ingred", Operator: "LIKE"},
	})
	require.NoError(t, err)
	require.Len(t, filters, 2)
	assert.Equal(t, OpEquals, filters[0].Operator)
	assert.Equal(t, OpLike, filters[1].Operator)

	_, err = FromInputs([]mmodel.FilterInput{{FieldName: "name", Value: "x", Operator: "matches"}})
	assert.Error(t, err)
}

func TestFieldsCoverEveryKind(t *testing.T) {
	for _, kind := range []string{"group", "unit", "item", "location", "movement", "recipe", "turnover"} {
		assert.NotEmpty(t, Fields(kind), "kind %s", kind)
	}

	assert.Nil(t, Fields("portfolio"))
}

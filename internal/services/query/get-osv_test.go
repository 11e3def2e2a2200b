package query

import (
	"context"
	"testing"
	"time"

	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScaleEnv reproduces the gram/kilogram tree with flour declared in
// kilograms and the movement history +0.1 kg, -0.05 kg.
func newScaleEnv(t *testing.T) *testEnv {
	t.Helper()

	env := newTestEnv(t)

	gram := env.repo.Find(repository.Units, "22222222222222222222222222222222").(*mmodel.Unit)

	kilogram, err := mmodel.NewUnit("77777777777777777777777777777777", "kilogram", 1000, gram)
	require.NoError(t, err)
	require.NoError(t, env.repo.Append(repository.Units, kilogram))

	env.item.Unit = kilogram

	env.addMovement(t, date(2024, time.January, 1), 0.1)
	env.addMovement(t, date(2024, time.February, 1), -0.05)

	return env
}

func TestGetOSV(t *testing.T) {
	env := newScaleEnv(t)

	rows, err := env.query.GetOSV(context.Background(), date(2024, time.January, 1), date(2024, time.February, 28), env.location.Code())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "flour", row.NomenclatureName)
	assert.Equal(t, "kilogram", row.UnitName)
	assert.InDelta(t, 0, row.StartBalance, 1e-9)
	assert.InDelta(t, 0.1, row.Income, 1e-9)
	assert.InDelta(t, 0.05, row.Outcome, 1e-9)
	assert.InDelta(t, 0.05, row.EndBalance, 1e-9)
}

func TestGetOSVOpeningBalance(t *testing.T) {
	env := newScaleEnv(t)

	rows, err := env.query.GetOSV(context.Background(), date(2024, time.January, 15), date(2024, time.February, 28), env.location.Code())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.InDelta(t, 0.1, row.StartBalance, 1e-9)
	assert.InDelta(t, 0, row.Income, 1e-9)
	assert.InDelta(t, 0.05, row.Outcome, 1e-9)
	assert.InDelta(t, 0.05, row.EndBalance, 1e-9)
}

func TestGetOSVRejectsInvertedWindow(t *testing.T) {
	env := newScaleEnv(t)

	_, err := env.query.GetOSV(context.Background(), date(2024, time.March, 1), date(2024, time.January, 1), env.location.Code())

	var operation pkg.UnprocessableOperationError

	require.ErrorAs(t, err, &operation)
	assert.Equal(t, cn.ErrStartAfterEnd.Error(), operation.Code)
}

func TestGetOSVUnknownLocation(t *testing.T) {
	env := newScaleEnv(t)

	_, err := env.query.GetOSV(context.Background(), date(2024, time.January, 1), date(2024, time.February, 1), "ffffffffffffffffffffffffffffffff")

	var notFound pkg.EntityNotFoundError

	assert.ErrorAs(t, err, &notFound)
}

func TestGetOSVFiltered(t *testing.T) {
	env := newScaleEnv(t)

	rows, err := env.query.GetOSVFiltered(context.Background(), []mmodel.FilterInput{
		{FieldName: "period", Value: "2024-01-01", Operator: "GREATER_EQUAL"},
		{FieldName: "period", Value: "2024-02-28", Operator: "LESS_EQUAL"},
		{FieldName: "storage", Value: env.location.Code(), Operator: "EQUALS"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.05, rows[0].EndBalance, 1e-9)
}

func TestGetOSVFilteredNarrowsItems(t *testing.T) {
	env := newScaleEnv(t)

	tools, err := mmodel.NewGroup("88888888888888888888888888888888", "Tools")
	require.NoError(t, err)
	require.NoError(t, env.repo.Append(repository.Groups, tools))

	piece, err := mmodel.NewUnit("99999999999999999999999999999999", "piece", 1, nil)
	require.NoError(t, err)
	require.NoError(t, env.repo.Append(repository.Units, piece))

	whisk, err := mmodel.NewItem("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "whisk", tools, piece)
	require.NoError(t, err)
	require.NoError(t, env.repo.Append(repository.Items, whisk))

	rows, err := env.query.GetOSVFiltered(context.Background(), []mmodel.FilterInput{
		{FieldName: "period", Value: "2024-01-01", Operator: "GREATER_EQUAL"},
		{FieldName: "period", Value: "2024-02-28", Operator: "LESS_EQUAL"},
		{FieldName: "storage", Value: env.location.Code(), Operator: "EQUALS"},
		{FieldName: "group/name", Value: "ingred", Operator: "LIKE"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "flour", rows[0].NomenclatureName)
}

func TestGetOSVFilteredMissingMandatoryFilters(t *testing.T) {
	env := newScaleEnv(t)

	_, err := env.query.GetOSVFiltered(context.Background(), []mmodel.FilterInput{
		{FieldName: "storage", Value: env.location.Code(), Operator: "EQUALS"},
	})
	assertValidationCode(t, err, cn.ErrMissingPeriodFilter)

	_, err = env.query.GetOSVFiltered(context.Background(), []mmodel.FilterInput{
		{FieldName: "period", Value: "2024-01-01", Operator: "GREATER_EQUAL"},
		{FieldName: "period", Value: "2024-02-28", Operator: "LESS_EQUAL"},
	})
	assertValidationCode(t, err, cn.ErrMissingStorageFilter)
}

func assertValidationCode(t *testing.T, err error, code error) {
	t.Helper()

	var validation pkg.ValidationError

	require.ErrorAs(t, err, &validation)
	assert.Equal(t, code.Error(), validation.Code)
}

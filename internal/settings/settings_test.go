package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/internal/turnover"
	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*Manager, *repository.Repository, *events.Bus, string) {
	t.Helper()

	dir := t.TempDir()

	repo := repository.New()
	bus := events.NewBus(nil)

	manager := NewManager(
		filepath.Join(dir, "settings.json"),
		filepath.Join(dir, "turnover_cache.json"),
		turnover.New(repo),
		bus,
	)

	return manager, repo, bus, dir
}

func seedMovement(t *testing.T, repo *repository.Repository) {
	t.Helper()

	group, err := mmodel.NewGroup("11111111111111111111111111111111", "Ingredients")
	require.NoError(t, err)
	require.NoError(t, repo.Append(repository.Groups, group))

	gram, err := mmodel.NewUnit("22222222222222222222222222222222", "gram", 1, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Append(repository.Units, gram))

	item, err := mmodel.NewItem("33333333333333333333333333333333", "flour", group, gram)
	require.NoError(t, err)
	require.NoError(t, repo.Append(repository.Items, item))

	location, err := mmodel.NewLocation("44444444444444444444444444444444", "main", "")
	require.NoError(t, err)
	require.NoError(t, repo.Append(repository.Locations, location))

	movement, err := mmodel.NewMovement(pkg.NewUniqueCode(),
		time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), item, location, 100, "g")
	require.NoError(t, err)
	require.NoError(t, repo.Append(repository.Movements, movement))
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	manager, _, _, _ := newManager(t)

	loaded, err := manager.Load()
	require.NoError(t, err)
	assert.False(t, loaded)

	assert.Equal(t, mmodel.FormatJSON, manager.Settings().ResponseFormat)
	assert.True(t, manager.Settings().IsFirstStart)
	assert.Nil(t, manager.BlockPeriod())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	manager, _, _, _ := newManager(t)

	manager.Settings().ResponseFormat = mmodel.FormatCSV
	manager.Settings().IsFirstStart = false
	manager.Settings().Company.Name = "Acme"

	require.NoError(t, manager.Save())

	fresh := NewManager(manager.filePath, manager.cachePath, nil, nil)

	loaded, err := fresh.Load()
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, mmodel.FormatCSV, fresh.Settings().ResponseFormat)
	assert.False(t, fresh.Settings().IsFirstStart)
	assert.Equal(t, "Acme", fresh.Settings().Company.Name)
}

func TestSetBlockPeriodPersistsCacheAndSettings(t *testing.T) {
	manager, repo, _, dir := newManager(t)
	seedMovement(t, repo)

	cutoff := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, manager.SetBlockPeriod(cutoff))

	require.NotNil(t, manager.BlockPeriod())
	assert.True(t, manager.BlockPeriod().Equal(cutoff))

	// One cache record was computed for the seeded pair.
	require.Len(t, repo.TurnoversAll(), 1)
	assert.True(t, repo.TurnoversAll()[0].PeriodEnd.Equal(cutoff))

	// Both files landed on disk.
	settingsData, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(settingsData, &decoded))
	assert.Contains(t, decoded, "block_period")

	var snapshot mmodel.TurnoverSnapshot

	cacheData, err := os.ReadFile(filepath.Join(dir, "turnover_cache.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(cacheData, &snapshot))
	assert.Len(t, snapshot.TurnoverCache, 1)
}

func TestSetBlockPeriodNotifiesBus(t *testing.T) {
	manager, repo, bus, _ := newManager(t)
	seedMovement(t, repo)

	var seen []time.Time

	bus.Subscribe(&blockPeriodRecorder{seen: &seen})

	cutoff := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, manager.SetBlockPeriod(cutoff))

	require.Len(t, seen, 1)
	assert.True(t, seen[0].Equal(cutoff))
}

type blockPeriodRecorder struct {
	seen *[]time.Time
}

func (r *blockPeriodRecorder) Key() string { return "recorder" }

func (r *blockPeriodRecorder) Handle(kind events.Kind, payload any) error {
	if kind == events.ChangeBlockPeriod {
		if p, ok := payload.(events.BlockPeriodPayload); ok {
			*r.seen = append(*r.seen, p.Cutoff)
		}
	}

	return nil
}

func TestSetBlockPeriodLeavesSettingsOnFailure(t *testing.T) {
	dir := t.TempDir()

	repo := repository.New()
	bus := events.NewBus(nil)

	// Point the cache file at a directory to force the persistence step to fail.
	manager := NewManager(
		filepath.Join(dir, "settings.json"),
		dir,
		turnover.New(repo),
		bus,
	)

	seedMovement(t, repo)

	err := manager.SetBlockPeriod(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	assert.Nil(t, manager.BlockPeriod(), "a failed install must not change the settings")
}

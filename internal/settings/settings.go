// Package settings holds the application settings manager: the company record,
// the response-format tag, the first-start flag and the block period (cutoff).
// Installing a cutoff recomputes and persists the turnover cache before the
// cutoff is stored; a failed install leaves the settings unchanged, while the
// in-memory cache keeps whatever records were already recomputed.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/turnover"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Manager owns the settings lifetime. One instance is threaded through the
// application root; there is no process-wide mutable global.
type Manager struct {
	filePath  string
	cachePath string
	settings  *mmodel.Settings
	turnover  *turnover.Service
	bus       *events.Bus
}

// NewManager creates a manager starting from the default settings.
func NewManager(filePath, cachePath string, turnoverSvc *turnover.Service, bus *events.Bus) *Manager {
	return &Manager{
		filePath:  filePath,
		cachePath: cachePath,
		settings:  mmodel.DefaultSettings(),
		turnover:  turnoverSvc,
		bus:       bus,
	}
}

// Settings returns the live settings object.
func (m *Manager) Settings() *mmodel.Settings {
	return m.settings
}

// BlockPeriod returns the configured cutoff, or nil when none is set.
func (m *Manager) BlockPeriod() *time.Time {
	return m.settings.BlockPeriod
}

// Load reads the settings file. A missing file keeps the defaults; the first
// return reports whether a file was read.
func (m *Manager) Load() (bool, error) {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, pkg.ValidateBusinessError(cn.ErrSettingsFileNotFound, "Settings", m.filePath)
	}

	loaded := mmodel.DefaultSettings()
	if err := json.Unmarshal(data, loaded); err != nil {
		return false, pkg.ValidateBusinessError(cn.ErrSettingsFileNotFound, "Settings", m.filePath)
	}

	m.settings = loaded

	return true, nil
}

// Save writes the settings file, pretty-printed with a two-space indent.
// Unknown fields read at load time are written back.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.settings, "", "  ")
	if err != nil {
		return pkg.ValidateInternalError(err, "Settings")
	}

	if err := os.WriteFile(m.filePath, data, 0o644); err != nil {
		return pkg.UnprocessableOperationError{
			EntityType: "Settings",
			Code:       cn.ErrSettingsFileNotFound.Error(),
			Title:      "Settings Not Saved",
			Message:    "The settings file could not be written: " + err.Error(),
			Err:        err,
		}
	}

	return nil
}

// SetBlockPeriod installs a new cutoff: recompute the turnover cache, persist
// the cache snapshot, store and persist the cutoff, then notify the bus. If any
// step fails the settings are left unchanged and the error propagates.
func (m *Manager) SetBlockPeriod(cutoff time.Time) error {
	if err := m.turnover.Compute(cutoff); err != nil {
		return err
	}

	if err := m.turnover.Save(m.cachePath); err != nil {
		return err
	}

	previous := m.settings.BlockPeriod
	m.settings.BlockPeriod = &cutoff

	if err := m.Save(); err != nil {
		m.settings.BlockPeriod = previous
		return err
	}

	if err := m.bus.Fire(events.ChangeBlockPeriod, events.BlockPeriodPayload{Cutoff: cutoff}); err != nil {
		m.settings.BlockPeriod = previous
		_ = m.Save()

		return err
	}

	return nil
}

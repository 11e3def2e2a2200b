package mmodel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRoundTripPreservesUnknownFields(t *testing.T) {
	raw := []byte(`{
		"response_format": "csv",
		"is_first_start": false,
		"company": {"name": "Acme", "inn": "7701234567", "bic": "", "corr_account": "", "account": "", "ownership": ""},
		"block_period": "2024-01-01T00:00:00Z",
		"theme": "dark",
		"custom": {"nested": 1}
	}`)

	var settings Settings
	require.NoError(t, json.Unmarshal(raw, &settings))

	assert.Equal(t, "csv", settings.ResponseFormat)
	assert.False(t, settings.IsFirstStart)
	assert.Equal(t, "Acme", settings.Company.Name)
	require.NotNil(t, settings.BlockPeriod)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), settings.BlockPeriod.UTC())

	out, err := json.Marshal(&settings)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "dark", decoded["theme"])
	assert.Contains(t, decoded, "custom")
	assert.Equal(t, "csv", decoded["response_format"])
}

func TestSettingsMarshalOmitsUnsetBlockPeriod(t *testing.T) {
	settings := DefaultSettings()

	out, err := json.Marshal(settings)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.NotContains(t, decoded, "block_period")
	assert.Equal(t, true, decoded["is_first_start"])
}

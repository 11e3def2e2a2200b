package mmodel

import (
	"encoding/json"
	"time"
)

// ResponseFormat tags supported by the data dump endpoints.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatXML      = "xml"
	FormatMarkdown = "markdown"
)

// SupportedFormats lists the response formats in their canonical order.
var SupportedFormats = []string{FormatJSON, FormatCSV, FormatXML, FormatMarkdown}

// Settings holds the application state persisted between runs: the company
// record, the preferred response format, the first-start flag and the optional
// block period (cutoff). Unknown fields found in the settings file are kept and
// written back on save.
type Settings struct {
	ResponseFormat string
	IsFirstStart   bool
	Company        Company
	BlockPeriod    *time.Time

	extra map[string]json.RawMessage
}

// DefaultSettings returns the settings used when no settings file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		ResponseFormat: FormatJSON,
		IsFirstStart:   true,
		Company: Company{
			Name: "Default Company",
		},
	}
}

// UnmarshalJSON decodes the settings, stashing unknown fields for round-trip.
func (s *Settings) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["response_format"]; ok {
		if err := json.Unmarshal(v, &s.ResponseFormat); err != nil {
			return err
		}

		delete(raw, "response_format")
	}

	if v, ok := raw["is_first_start"]; ok {
		if err := json.Unmarshal(v, &s.IsFirstStart); err != nil {
			return err
		}

		delete(raw, "is_first_start")
	}

	if v, ok := raw["company"]; ok {
		if err := json.Unmarshal(v, &s.Company); err != nil {
			return err
		}

		delete(raw, "company")
	}

	if v, ok := raw["block_period"]; ok {
		var ts *time.Time
		if err := json.Unmarshal(v, &ts); err != nil {
			return err
		}

		s.BlockPeriod = ts

		delete(raw, "block_period")
	}

	if len(raw) > 0 {
		s.extra = raw
	}

	return nil
}

// MarshalJSON encodes the settings, restoring any unknown fields read earlier.
func (s *Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.extra)+4)
	for k, v := range s.extra {
		out[k] = v
	}

	formatRaw, err := json.Marshal(s.ResponseFormat)
	if err != nil {
		return nil, err
	}

	out["response_format"] = formatRaw

	firstStartRaw, err := json.Marshal(s.IsFirstStart)
	if err != nil {
		return nil, err
	}

	out["is_first_start"] = firstStartRaw

	companyRaw, err := json.Marshal(s.Company)
	if err != nil {
		return nil, err
	}

	out["company"] = companyRaw

	if s.BlockPeriod != nil {
		periodRaw, err := json.Marshal(s.BlockPeriod)
		if err != nil {
			return nil, err
		}

		out["block_period"] = periodRaw
	}

	return json.Marshal(out)
}

package mmodel

import "time"

// TurnoverRecord is a pre-aggregated sum of signed movements for one
// (item, location) pair over the window [1900-01-01, PeriodEnd].
type TurnoverRecord struct {
	UniqueCode     string    `json:"unique_code"`
	NomenclatureID string    `json:"nomenclature_id"`
	StorageID      string    `json:"storage_id"`
	PeriodEnd      time.Time `json:"period_end"`
	DebitTurnover  float64   `json:"debit_turnover"`
	CreditTurnover float64   `json:"credit_turnover"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// Code returns the unique code of the record.
func (t *TurnoverRecord) Code() string { return t.UniqueCode }

// EntityKind returns the kind name of the record.
func (t *TurnoverRecord) EntityKind() string { return "turnover" }

// Balance returns the net balance frozen by this record.
func (t *TurnoverRecord) Balance() float64 {
	return t.DebitTurnover - t.CreditTurnover
}

// TurnoverSnapshot is the persisted form of the turnover cache.
type TurnoverSnapshot struct {
	ExportDate    time.Time         `json:"export_date"`
	TurnoverCache []*TurnoverRecord `json:"turnover_cache"`
}

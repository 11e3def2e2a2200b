package mmodel

import "time"

// BalanceRow is one line of the balance report. The cutoff-aware path also fills
// the start balance and the period components; the simple path leaves them nil.
type BalanceRow struct {
	NomenclatureID   string    `json:"nomenclature_id"`
	NomenclatureName string    `json:"nomenclature_name"`
	StorageID        string    `json:"storage_id"`
	StorageName      string    `json:"storage_name"`
	Balance          float64   `json:"balance"`
	StartBalance     *float64  `json:"start_balance,omitempty"`
	PeriodDebit      *float64  `json:"period_debit,omitempty"`
	PeriodCredit     *float64  `json:"period_credit,omitempty"`
	CalculationDate  time.Time `json:"calculation_date"`
}

// OSVRow is one line of the turnover-balance sheet: opening balance, inflow,
// outflow and closing balance in the item's declared unit, rounded for display.
type OSVRow struct {
	NomenclatureID   string  `json:"nomenclature_id"`
	NomenclatureName string  `json:"nomenclature_name"`
	UnitName         string  `json:"unit_name"`
	StartBalance     float64 `json:"start_balance"`
	Income           float64 `json:"income"`
	Outcome          float64 `json:"outcome"`
	EndBalance       float64 `json:"end_balance"`
}

package mmodel

// ReferenceInput is the attribute map accepted by the reference mutations. Which
// fields apply depends on the kind; absent pointers mean "leave unchanged" on
// change and "use the default" on add.
type ReferenceInput struct {
	UniqueCode string  `json:"unique_code,omitempty" validate:"omitempty,len=32,hexadecimal,lowercase"`
	Name       *string `json:"name,omitempty" validate:"omitempty,max=256"`
	Address    *string `json:"address,omitempty" validate:"omitempty,max=512"`
	Factor     *int64  `json:"factor,omitempty" validate:"omitempty,gt=0"`
	BaseID     *string `json:"base_id,omitempty" validate:"omitempty,len=32,hexadecimal,lowercase"`
	GroupID    *string `json:"group_id,omitempty" validate:"omitempty,len=32,hexadecimal,lowercase"`
	UnitID     *string `json:"unit_id,omitempty" validate:"omitempty,len=32,hexadecimal,lowercase"`
}

// DeleteReferenceInput identifies the entity a DELETE operation targets.
type DeleteReferenceInput struct {
	UniqueCode string `json:"unique_code" validate:"required,len=32,hexadecimal,lowercase"`
}

// FilterInput is one predicate of a filter list as it arrives on the wire.
type FilterInput struct {
	FieldName string `json:"field_name" validate:"required,max=256"`
	Value     string `json:"value"`
	Operator  string `json:"operator" validate:"required"`
}

// BlockPeriodInput carries the cutoff instant for POST /api/settings/block-period.
type BlockPeriodInput struct {
	BlockPeriod string `json:"block_period" validate:"required"`
}

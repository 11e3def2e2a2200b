package constant

import "errors"

var (
	ErrInternalServer          = errors.New("0001")
	ErrEntityNotFound          = errors.New("0002")
	ErrDuplicateUniqueCode     = errors.New("0003")
	ErrInvalidReferenceKind    = errors.New("0004")
	ErrMissingRequiredField    = errors.New("0005")
	ErrMalformedDate           = errors.New("0006")
	ErrDependencyVeto          = errors.New("0007")
	ErrTargetBeforeBlockPeriod = errors.New("0008")
	ErrStartAfterEnd           = errors.New("0009")
	ErrInvalidCacheFile        = errors.New("0010")
	ErrUnknownEventKind        = errors.New("0011")
	ErrUnitChainTooDeep        = errors.New("0012")
	ErrInvalidQuantity         = errors.New("0013")
	ErrDateBeforeLowerBound    = errors.New("0014")
	ErrInvalidFilterOperator   = errors.New("0015")
	ErrMissingPeriodFilter     = errors.New("0016")
	ErrMissingStorageFilter    = errors.New("0017")
	ErrInvalidUnitFactor       = errors.New("0018")
	ErrUnsupportedFormat       = errors.New("0019")
	ErrBadRequest              = errors.New("0020")
	ErrUnknownFields           = errors.New("0021")
	ErrInvalidUniqueCode       = errors.New("0022")
	ErrSettingsFileNotFound    = errors.New("0023")
)

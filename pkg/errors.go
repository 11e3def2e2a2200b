package pkg

import (
	"errors"
	"fmt"
	"strings"

	cn "github.com/foodops/stockbook/pkg/constant"
)

// EntityNotFoundError records an error indicating an entity was not found in any case that caused it.
// You can use it to representing a repository lookup miss or any other absent entity.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// NewEntityNotFoundError creates an instance of EntityNotFoundError.
func NewEntityNotFoundError(entityType string) EntityNotFoundError {
	return EntityNotFoundError{
		EntityType: entityType,
	}
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// ValidationError records an error indicating the caller passed a bad value (wrong type,
// missing field, malformed date). No state is mutated when it is returned.
type ValidationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// EntityConflictError records an error indicating an entity already exists in some bucket.
type EntityConflictError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityConflictError) Error() string {
	if e.Err != nil && strings.TrimSpace(e.Message) == "" {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityConflictError) Unwrap() error {
	return e.Err
}

// DependencyVetoError indicates a deletion was refused because another entity still holds a
// reference to the target. It carries the holder's identity so the caller can see who refused.
type DependencyVetoError struct {
	EntityType string
	HolderKind string
	HolderCode string
	HolderName string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e DependencyVetoError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e DependencyVetoError) Unwrap() error {
	return e.Err
}

// UnprocessableOperationError indicates an operation whose runtime preconditions failed
// (entity not found mid-operation, cutoff after target date, invalid cache file).
type UnprocessableOperationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e UnprocessableOperationError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e UnprocessableOperationError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates a broken invariant or a programming error. Fatal for the request.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

// Error implements the error interface.
func (e InternalServerError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       cn.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError translates a constant error code into the typed business error the
// boundary layers know how to map onto the wire. Args feed the human-readable message.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	switch {
	case errors.Is(err, cn.ErrEntityNotFound):
		return EntityNotFoundError{
			EntityType: entityType,
			Code:       cn.ErrEntityNotFound.Error(),
			Title:      "Entity Not Found",
			Message:    fmt.Sprintf("No %s was found with the given unique code %s. Please make sure the code is correct.", entityType, fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrDuplicateUniqueCode):
		return EntityConflictError{
			EntityType: entityType,
			Code:       cn.ErrDuplicateUniqueCode.Error(),
			Title:      "Duplicate Unique Code",
			Message:    fmt.Sprintf("An entity with the unique code %s already exists. Unique codes are global across all reference kinds.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrInvalidReferenceKind):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidReferenceKind.Error(),
			Title:      "Invalid Reference Kind",
			Message:    fmt.Sprintf("The reference kind %s is not supported. Supported kinds are: item, group, unit, location.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrMissingRequiredField):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingRequiredField.Error(),
			Title:      "Missing Required Field",
			Message:    fmt.Sprintf("The field %s is required for this operation. Please provide it and try again.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrMalformedDate):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMalformedDate.Error(),
			Title:      "Malformed Date",
			Message:    fmt.Sprintf("The value %s is not a valid date. Use an ISO-8601 instant or a YYYY-MM-DD date.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrDependencyVeto):
		return DependencyVetoError{
			EntityType: entityType,
			Code:       cn.ErrDependencyVeto.Error(),
			Title:      "Deletion Refused",
			Message:    fmt.Sprintf("The %s cannot be deleted because %s still references it.", entityType, fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrTargetBeforeBlockPeriod):
		return UnprocessableOperationError{
			EntityType: entityType,
			Code:       cn.ErrTargetBeforeBlockPeriod.Error(),
			Title:      "Target Date Before Block Period",
			Message:    "The target date cannot be earlier than the configured block period. Choose a date on or after the block period.",
		}
	case errors.Is(err, cn.ErrStartAfterEnd):
		return UnprocessableOperationError{
			EntityType: entityType,
			Code:       cn.ErrStartAfterEnd.Error(),
			Title:      "Start Date After End Date",
			Message:    "The start date cannot be later than the end date of the reporting window.",
		}
	case errors.Is(err, cn.ErrInvalidCacheFile):
		return UnprocessableOperationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidCacheFile.Error(),
			Title:      "Invalid Turnover Cache File",
			Message:    fmt.Sprintf("The turnover cache file could not be read: %s", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrUnknownEventKind):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrUnknownEventKind.Error(),
			Title:      "Unknown Event Kind",
			Message:    fmt.Sprintf("The event kind %s is not part of the recognized event set.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrUnitChainTooDeep):
		return InternalServerError{
			EntityType: entityType,
			Code:       cn.ErrUnitChainTooDeep.Error(),
			Title:      "Unit Chain Too Deep",
			Message:    fmt.Sprintf("The parent chain of unit %s exceeds the maximum depth. The unit tree is likely cyclic.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrInvalidQuantity):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidQuantity.Error(),
			Title:      "Invalid Quantity",
			Message:    "A movement quantity must be a finite, non-zero number.",
		}
	case errors.Is(err, cn.ErrDateBeforeLowerBound):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrDateBeforeLowerBound.Error(),
			Title:      "Date Before Lower Bound",
			Message:    "A movement timestamp cannot be earlier than 1900-01-01.",
		}
	case errors.Is(err, cn.ErrInvalidFilterOperator):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidFilterOperator.Error(),
			Title:      "Invalid Filter Operator",
			Message:    fmt.Sprintf("The operator %s is not supported. Supported operators are: EQUALS, NOT_EQUALS, LIKE, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrMissingPeriodFilter):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingPeriodFilter.Error(),
			Title:      "Missing Period Filter",
			Message:    "The filter list must carry both period bounds: one period filter with GREATER, GREATER_EQUAL or EQUALS and one with LESS, LESS_EQUAL or EQUALS.",
		}
	case errors.Is(err, cn.ErrMissingStorageFilter):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingStorageFilter.Error(),
			Title:      "Missing Storage Filter",
			Message:    "The filter list must carry a storage filter with the EQUALS operator.",
		}
	case errors.Is(err, cn.ErrInvalidUnitFactor):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidUnitFactor.Error(),
			Title:      "Invalid Unit Factor",
			Message:    "A unit factor must be a positive integer.",
		}
	case errors.Is(err, cn.ErrUnsupportedFormat):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrUnsupportedFormat.Error(),
			Title:      "Unsupported Response Format",
			Message:    fmt.Sprintf("The response format %s is not supported. Supported formats are: json, csv, xml, markdown.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrInvalidUniqueCode):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidUniqueCode.Error(),
			Title:      "Invalid Unique Code",
			Message:    fmt.Sprintf("The unique code %s is not a 32-character lowercase hexadecimal string.", fmt.Sprint(args...)),
		}
	case errors.Is(err, cn.ErrSettingsFileNotFound):
		return UnprocessableOperationError{
			EntityType: entityType,
			Code:       cn.ErrSettingsFileNotFound.Error(),
			Title:      "Settings File Not Found",
			Message:    fmt.Sprintf("The settings file %s was not found or could not be read.", fmt.Sprint(args...)),
		}
	default:
		return err
	}
}

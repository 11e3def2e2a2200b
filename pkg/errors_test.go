package pkg

import (
	"testing"

	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/stretchr/testify/assert"
)

func TestValidateBusinessError(t *testing.T) {
	tests := []struct {
		name     string
		code     error
		expected any
	}{
		{name: "not found", code: cn.ErrEntityNotFound, expected: EntityNotFoundError{}},
		{name: "duplicate code", code: cn.ErrDuplicateUniqueCode, expected: EntityConflictError{}},
		{name: "invalid kind", code: cn.ErrInvalidReferenceKind, expected: ValidationError{}},
		{name: "veto", code: cn.ErrDependencyVeto, expected: DependencyVetoError{}},
		{name: "target before cutoff", code: cn.ErrTargetBeforeBlockPeriod, expected: UnprocessableOperationError{}},
		{name: "unknown event", code: cn.ErrUnknownEventKind, expected: InternalServerError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBusinessError(tt.code, "Item", "x")
			assert.IsType(t, tt.expected, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestValidateBusinessErrorPassesUnknownThrough(t *testing.T) {
	original := assert.AnError

	err := ValidateBusinessError(original, "Item")
	assert.Equal(t, original, err)
}

func TestValidateInternalError(t *testing.T) {
	err := ValidateInternalError(assert.AnError, "Item")

	var internal InternalServerError

	assert.ErrorAs(t, err, &internal)
	assert.Equal(t, cn.ErrInternalServer.Error(), internal.Code)
}

package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUniqueCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := NewUniqueCode()

		assert.True(t, IsUniqueCode(code), "generated code %q is not canonical", code)
		assert.False(t, seen[code], "generated code %q repeated", code)

		seen[code] = true
	}
}

func TestIsUniqueCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "valid", code: "0c101a7e5934415583a6d2c388fcc11a", want: true},
		{name: "uppercase", code: "0C101A7E5934415583A6D2C388FCC11A", want: false},
		{name: "dashes", code: "0c101a7e-5934-4155-83a6-d2c388fcc11a", want: false},
		{name: "short", code: "0c101a7e", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueCode(tt.code))
		})
	}
}

func TestIsNilOrEmpty(t *testing.T) {
	empty := ""
	blank := "   "
	value := "flour"

	assert.True(t, IsNilOrEmpty(nil))
	assert.True(t, IsNilOrEmpty(&empty))
	assert.True(t, IsNilOrEmpty(&blank))
	assert.False(t, IsNilOrEmpty(&value))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"json", "csv"}, "csv"))
	assert.False(t, Contains([]string{"json", "csv"}, "xml"))
}

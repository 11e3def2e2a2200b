package pkg

import (
	"testing"
	"time"

	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2024-01-01T10:30:00Z",
			want:  time.Date(2024, time.January, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "plain date",
			input: "2024-02-28",
			want:  time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "datetime without zone",
			input: "2024-02-28T12:00:00",
			want:  time.Date(2024, time.February, 28, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseInstantMalformed(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-13-01", "01.02.2024"} {
		_, err := ParseInstant(input)
		assert.ErrorIs(t, err, cn.ErrMalformedDate, "input %q", input)
	}
}

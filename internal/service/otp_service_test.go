package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading zero", "0987654321", "+84987654321"},
		{"already international", "+84987654321", "+84987654321"},
		{"surrounding whitespace", " 0987654321 ", "+84987654321"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhoneNumberRejectsUnknownFormat(t *testing.T) {
	for _, input := range []string{"", "987654321", "+1987654321", "0"} {
		_, err := NormalizePhoneNumber(input)
		assert.Error(t, err, "input %q", input)
	}
}

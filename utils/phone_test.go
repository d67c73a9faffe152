package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTenDigitPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0551234567", true},
		{"1234567890", true},
		{"055123456", false},
		{"05512345678", false},
		{"055123456a", false},
		{"055-123-456", false},
		{"+966551234", false},
		{"٠٥٥١٢٣٤٥٦٧", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTenDigitPhone(tt.phone))
		})
	}
}

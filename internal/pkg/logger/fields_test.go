package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{"e164 number", "+919876543210", "********3210"},
		{"formatted number", "98765-43210", "******3210"},
		{"short number", "123", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := Phone("phone", tt.phone)
			assert.Equal(t, "phone", field.Key)
			assert.Equal(t, tt.expected, field.String)
		})
	}
}

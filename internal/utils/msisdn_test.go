package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		expected    string
		expectError bool
	}{
		{name: "Bare ten digits", phone: "9876543210", expected: "+919876543210"},
		{name: "Already e164", phone: "+919876543210", expected: "+919876543210"},
		{name: "Country code without plus", phone: "919876543210", expected: "+919876543210"},
		{name: "Trunk zero", phone: "09876543210", expected: "+919876543210"},
		{name: "Spaces and dashes", phone: " 98765-432 10 ", expected: "+919876543210"},
		{name: "Parentheses", phone: "(+91) 98765 43210", expected: "+919876543210"},
		{name: "Starts with six", phone: "6123456789", expected: "+916123456789"},
		{name: "Landline style prefix", phone: "2212345678", expectError: true},
		{name: "Too short", phone: "98765432", expectError: true},
		{name: "Too long", phone: "98765432101", expectError: true},
		{name: "Letters", phone: "98765abcde", expectError: true},
		{name: "Foreign country code", phone: "+449876543210", expectError: true},
		{name: "Empty", phone: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateOTPCode(t *testing.T) {
	valid := []string{"1234", "12345", "123456"}
	for _, code := range valid {
		assert.NoError(t, ValidateOTPCode(code), code)
	}

	invalid := []string{"", "1", "123", "1234567", "12a4", " 1234"}
	for _, code := range invalid {
		assert.ErrorIs(t, ValidateOTPCode(code), ErrInvalidOTP, code)
	}
}

package utils

import (
	"errors"
	"regexp"
	"strings"
)

// CountryCode is prefixed to every phone number sent to the lab API
const CountryCode = "+91"

var (
	// ErrInvalidPhone is returned when a number is not a valid Indian mobile number
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidOTP is returned when an OTP code is not 4-6 digits
	ErrInvalidOTP = errors.New("otp must be 4 to 6 digits")

	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	otpPattern    = regexp.MustCompile(`^\d{4,6}$`)
)

// NormalizePhone converts a user-entered mobile number into +91XXXXXXXXXX.
// Spaces, dashes, parentheses and a leading + are ignored, as is an existing
// 91 country code or trunk 0.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "").Replace(strings.TrimSpace(phone))

	switch {
	case len(stripped) == 12 && strings.HasPrefix(stripped, "91"):
		stripped = stripped[2:]
	case len(stripped) == 11 && strings.HasPrefix(stripped, "0"):
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", ErrInvalidPhone
	}

	return CountryCode + stripped, nil
}

// ValidateOTPCode checks the shape of an OTP before it is sent anywhere
func ValidateOTPCode(code string) error {
	if !otpPattern.MatchString(code) {
		return ErrInvalidOTP
	}
	return nil
}

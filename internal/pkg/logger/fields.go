package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field
type Field = zap.Field

// Field constructors, so callers need not import zap

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Phone logs a phone number with all but the last four digits masked
func Phone(key, phone string) Field {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) <= 4 {
		return zap.String(key, string(digits))
	}
	for i := 0; i < len(digits)-4; i++ {
		digits[i] = '*'
	}
	return zap.String(key, string(digits))
}

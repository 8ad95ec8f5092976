package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsValidUUID accepts any RFC 9562 version, case-insensitive.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

var pinRegex = regexp.MustCompile(`^[0-9]{4,12}$`)

// IsValidPIN reports whether pin is 4 to 12 digits.
func IsValidPIN(pin string) bool {
	return pinRegex.MatchString(pin)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidClockTime reports whether s is a canonical "HH:MM" time of day.
func IsValidClockTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := clock.Parse(s)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// RequiredClockTime appends an error when s is empty or not canonical "HH:MM".
func RequiredClockTime(errs ValidationErrors, field, s string) ValidationErrors {
	if IsEmpty(s) {
		return append(errs, ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	}
	return OptionalClockTime(errs, field, &s)
}

// OptionalClockTime appends an error when s is set and not canonical "HH:MM".
func OptionalClockTime(errs ValidationErrors, field string, s *string) ValidationErrors {
	if s == nil || *s == "" {
		return errs
	}
	if !IsValidClockTime(*s) {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: field + " must be in HH:MM format",
		})
	}
	return errs
}

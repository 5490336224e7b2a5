package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - common in transit IDs
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ParseStopID converts raw textual input into an integer identifier.
// Whitespace is trimmed; anything else that is not a base-10 integer fails with ErrInputFormat.
func ParseStopID(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrInputFormat)
	}
	return value, nil
}

// ValidateRange reports a *RangeError when value is outside [min, max].
func ValidateRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &RangeError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

// ParseStopPair parses and range checks the "from" and "to" query values of a journey request.
// Problems are collected per field in the same shape as the API's fieldErrors payload.
func ParseStopPair(rawFrom, rawTo string, min, max int) (from, to int, fieldErrors map[string][]string) {
	fieldErrors = make(map[string][]string)

	check := func(field, raw string) int {
		if raw == "" {
			fieldErrors[field] = append(fieldErrors[field], fmt.Sprintf("missing required field %q", field))
			return 0
		}
		value, err := ParseStopID(field, raw)
		if err != nil {
			fieldErrors[field] = append(fieldErrors[field], fmt.Sprintf("Invalid field value for field %q.", field))
			return 0
		}
		if err := ValidateRange(field, value, min, max); err != nil {
			fieldErrors[field] = append(fieldErrors[field], err.Error())
		}
		return value
	}

	from = check("from", rawFrom)
	to = check("to", rawTo)
	return from, to, fieldErrors
}

package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat is returned when raw input is not a valid integer identifier.
	ErrInputFormat = errors.New("input is not a valid integer")

	// ErrInputRange is returned when an identifier falls outside the range of its network.
	ErrInputRange = errors.New("input out of range")
)

// RangeError describes an identifier that is outside [Min, Max].
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// Unwrap lets errors.Is match ErrInputRange.
func (e *RangeError) Unwrap() error {
	return ErrInputRange
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField    = errors.New("Location and ReviewBody are required fields.")
	ErrInvalidLocation = errors.New("Invalid location.")
	// ErrCorruptRecord marks a stored review whose data cannot be interpreted.
	ErrCorruptRecord = errors.New("corrupt review record")
)

// FormatError reports a date/time string that matched none of the known layouts.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("time data %q does not match any known format", e.Value)
}

// IsClientError reports whether err was caused by the request and should map to 400.
func IsClientError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe) || errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidLocation)
}

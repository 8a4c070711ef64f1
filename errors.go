package jpoet

import "errors"

var (
	// ErrInvalidDimensions is returned when an array type would have fewer
	// than zero or more than MaxArrayDimensions dimensions.
	ErrInvalidDimensions = errors.New("array dimensions must be between 0 and 255 (inclusive)")
	// ErrMissingValue is returned when a required option, such as a type or
	// a name, is not supplied to a constructor.
	ErrMissingValue = errors.New("missing required value")
	// ErrFinalSetter is returned when a setter is requested for a final
	// field.
	ErrFinalSetter = errors.New("final fields have no setter")
)

package indicator

import "errors"

var (
	// ErrInvalidRangeConfig is returned when min, max and step do not describe
	// a usable range.
	ErrInvalidRangeConfig = errors.New("invalid range config")
	// ErrOutOfRangeProgress is returned when a progress outside [0, 1] is set.
	ErrOutOfRangeProgress = errors.New("progress out of range")
	// ErrOutOfRangeValue is returned when a value outside [min, max] is set.
	ErrOutOfRangeValue = errors.New("value out of range")
	// ErrDegenerateStep is returned by the quantizer for a zero step count.
	ErrDegenerateStep = errors.New("degenerate step count")
)

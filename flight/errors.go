package flight

import "errors"

var (
	// ErrInvalidDelta is returned by Tick for a NaN, infinite or negative dt.
	ErrInvalidDelta = errors.New("invalid tick delta")
	// ErrSessionOver is returned by Tick once the flight has ended.
	ErrSessionOver = errors.New("session is over")
)

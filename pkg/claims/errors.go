package claims

import (
	"fmt"
	"time"
)

// CooldownError is returned when a claim arrives before the cooldown for
// the wallet has elapsed. No state is mutated on this path.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active: %s remaining", e.Remaining.Round(time.Millisecond))
}

// OutOfRangeError is returned when the reported coordinate falls outside
// the location's geofence. No state is mutated on this path.
type OutOfRangeError struct {
	DistanceM float64
	RadiusM   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %.1fm from location, allowed %.1fm", e.DistanceM, e.RadiusM)
}

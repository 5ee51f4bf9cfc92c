// Package events derives the currently active world event from clock time.
// Events alternate by UTC hour parity, so every node computes the same
// answer without coordination.
package events

import "time"

// Event modifies claim resolution while active
type Event struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CapsBonus   int    `json:"capsBonus"`
	HealthRisk  int    `json:"healthRisk"`
}

var (
	// SupplyDrop boosts the caps reward during even UTC hours
	SupplyDrop = Event{
		Name:        "supply-drop",
		Description: "A supply drop scattered extra caps across the wasteland.",
		CapsBonus:   8,
	}

	// RadStorm bleeds extra health during odd UTC hours
	RadStorm = Event{
		Name:        "rad-storm",
		Description: "A rad storm is rolling through; claims cost extra health.",
		HealthRisk:  6,
	}
)

// Schedule answers which event is active at a point in time
type Schedule struct {
	now func() time.Time
}

// NewSchedule creates a Schedule on the real clock
func NewSchedule() *Schedule {
	return &Schedule{now: time.Now}
}

// NewScheduleWithClock creates a Schedule with an injected clock
func NewScheduleWithClock(now func() time.Time) *Schedule {
	return &Schedule{now: now}
}

// Active returns the event in effect right now and the time of the next
// hourly flip.
func (s *Schedule) Active() (Event, time.Time) {
	now := s.now().UTC()
	next := now.Truncate(time.Hour).Add(time.Hour)

	if now.Hour()%2 == 0 {
		return SupplyDrop, next
	}
	return RadStorm, next
}

// Lookup resolves a claim's named event against the active schedule. It
// returns the event only when the name matches what is active right now;
// stale or unknown names yield no modifier.
func (s *Schedule) Lookup(name string) (Event, bool) {
	if name == "" {
		return Event{}, false
	}
	active, _ := s.Active()
	if active.Name != name {
		return Event{}, false
	}
	return active, true
}

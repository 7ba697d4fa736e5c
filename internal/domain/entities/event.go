package entities

import "time"

// ScheduleEvent is one occurrence of a recurring in-game activity. Events
// are rebuilt from the schedule files on every reload; Key is the only
// identity that survives a rebuild.
type ScheduleEvent struct {
	Category string
	StartsAt time.Time // UTC, minute resolution
}

// Key is the deterministic dedup/notification identity of the event.
func (e ScheduleEvent) Key() string {
	return e.Category + ":" + e.StartsAt.UTC().Format(time.RFC3339)
}

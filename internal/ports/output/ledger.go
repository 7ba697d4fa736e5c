package output

import "time"

// NotificationLedger is the durable set of event keys that have already been
// warned. MarkWarned must persist before returning so a restart never
// re-warns an event.
type NotificationLedger interface {
	IsWarned(key string) bool
	// MarkWarned is idempotent.
	MarkWarned(key string) error
	// Prune drops entries whose embedded timestamp is more than the retention
	// window before now and returns how many were removed. Keys it cannot
	// parse are kept.
	Prune(now time.Time) int
}

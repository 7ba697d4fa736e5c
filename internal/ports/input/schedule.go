package input

import (
	"context"
	"time"

	"herald/internal/domain/entities"
)

// CategoryCount is the per-source line of a reload report, in configured
// category order.
type CategoryCount struct {
	Category string
	Count    int
}

// ReloadReport summarizes one catalog rebuild.
type ReloadReport struct {
	Categories []CategoryCount
	Total      int
	Skipped    int // malformed lines dropped across all sources
	Pruned     int // ledger entries removed
}

type ScheduleUseCase interface {
	// Reload rebuilds the whole catalog from the configured sources.
	Reload(ctx context.Context) (ReloadReport, error)
	// Upcoming returns events starting within d of now, ascending, capped.
	Upcoming(now time.Time, d time.Duration) []entities.ScheduleEvent
	// Next returns the earliest event starting at or after now.
	Next(now time.Time) (entities.ScheduleEvent, bool)
}

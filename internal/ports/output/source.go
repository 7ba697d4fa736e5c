package output

import "context"

// ScheduleStore reads the raw text of a named schedule input. A missing
// input is normal and yields empty content, not an error; optional category
// files simply may not exist yet.
type ScheduleStore interface {
	Read(ctx context.Context, name string) (string, error)
}

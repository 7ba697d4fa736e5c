package input

import (
	"context"
	"time"
)

type WarningUseCase interface {
	// EvaluateTick runs one sweep of the catalog and warns every un-warned
	// event whose start falls inside the one-hour window around now.
	EvaluateTick(ctx context.Context, now time.Time)
}

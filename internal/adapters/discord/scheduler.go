package discord

import (
	"context"
	"time"
)

// tickInterval is the polling period of the warning sweep. The application
// layer's ±30s window is sized to this: exactly one tick lands inside the
// window for every event.
const tickInterval = 30 * time.Second

// runTicker runs the warning sweep every tickInterval until stop closes.
// Sweeps run to completion on this goroutine, never concurrently.
func (b *Bot) runTicker(stop <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.warnings.EvaluateTick(context.Background(), time.Now().UTC())
		case <-stop:
			return
		}
	}
}

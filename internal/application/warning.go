package application

import (
	"context"
	"log"
	"sync"
	"time"

	"herald/internal/domain/entities"
	"herald/internal/ports/output"
)

// Warnings go out one hour before an event. Polling is coarse, so the lead
// time carries a ±30s tolerance: with a 30s tick exactly one tick lands
// inside the window.
const (
	warnLead      = time.Hour
	warnTolerance = 30 * time.Second
)

// Catalog is the read-only view of the event list the tick sweeps over.
type Catalog interface {
	Events() []entities.ScheduleEvent
}

// WarningService turns due events into at-most-once announcements. An event
// is marked in the ledger only after the notifier confirmed delivery, so a
// failed send is retried on the next tick while the window is still open.
type WarningService struct {
	catalog    Catalog
	ledger     output.NotificationLedger
	notifier   output.Notifier
	translator output.T
	locale     string
	phrase     string

	// guards the isWarned/markWarned pair against overlapping sweeps
	mu sync.Mutex
}

func NewWarningService(catalog Catalog, ledger output.NotificationLedger, notifier output.Notifier, translator output.T, locale, phrase string) *WarningService {
	return &WarningService{
		catalog:    catalog,
		ledger:     ledger,
		notifier:   notifier,
		translator: translator,
		locale:     locale,
		phrase:     phrase,
	}
}

// EvaluateTick sweeps the whole catalog once. Events outside the window are
// left untouched and re-checked on later ticks; events inside it are warned
// and recorded.
func (w *WarningService) EvaluateTick(ctx context.Context, now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ev := range w.catalog.Events() {
		key := ev.Key()
		if w.ledger.IsWarned(key) {
			continue
		}
		until := ev.StartsAt.Sub(now)
		if until < warnLead-warnTolerance || until > warnLead+warnTolerance {
			continue
		}

		text := w.translator.T(w.locale, "warn_message", map[string]any{
			"Category": ev.Category,
			"Phrase":   w.phrase,
		})
		if err := w.notifier.Send(ctx, text); err != nil {
			log.Printf("❌ warning for %s not delivered: %v", key, err)
			continue
		}
		if err := w.ledger.MarkWarned(key); err != nil {
			log.Printf("❌ warning for %s sent but not recorded: %v", key, err)
		}
	}
}

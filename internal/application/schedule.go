package application

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"herald/internal/domain/entities"
	"herald/internal/ports/input"
	"herald/internal/ports/output"
	"herald/pkg/timetext"
)

// maxUpcoming bounds the size of an Upcoming answer so a long schedule file
// cannot blow up a chat reply.
const maxUpcoming = 50

// Source binds a category label to the named input its lines come from.
type Source struct {
	Category string
	Name     string
}

// ScheduleService owns the event catalog: an in-memory, time-ordered view of
// every known event, rebuilt wholesale on each Reload.
type ScheduleService struct {
	store   output.ScheduleStore
	ledger  output.NotificationLedger
	sources []Source

	now func() time.Time

	mu     sync.RWMutex
	events []entities.ScheduleEvent
}

func NewScheduleService(store output.ScheduleStore, ledger output.NotificationLedger, sources []Source) *ScheduleService {
	return &ScheduleService{
		store:   store,
		ledger:  ledger,
		sources: sources,
		now:     time.Now,
	}
}

// Reload re-reads every configured source, fully replaces the catalog and
// prunes the ledger. Prior state is kept only if a source read fails.
func (s *ScheduleService) Reload(ctx context.Context) (input.ReloadReport, error) {
	now := s.now().UTC()

	var report input.ReloadReport
	var all []entities.ScheduleEvent
	for _, src := range s.sources {
		events, skipped, err := s.loadSource(ctx, src, now)
		if err != nil {
			return input.ReloadReport{}, fmt.Errorf("load source %s: %w", src.Name, err)
		}
		report.Categories = append(report.Categories, input.CategoryCount{Category: src.Category, Count: len(events)})
		report.Skipped += skipped
		all = append(all, events...)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].StartsAt.Before(all[j].StartsAt) })
	report.Total = len(all)
	report.Pruned = s.ledger.Prune(now)

	s.mu.Lock()
	s.events = all
	s.mu.Unlock()
	return report, nil
}

// loadSource parses one source into a deduplicated, time-sorted event slice.
// Duplicate keys keep the first occurrence; malformed lines are counted and
// skipped, never fatal.
func (s *ScheduleService) loadSource(ctx context.Context, src Source, now time.Time) ([]entities.ScheduleEvent, int, error) {
	raw, err := s.store.Read(ctx, src.Name)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]bool)
	var events []entities.ScheduleEvent
	skipped := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		startsAt, ok := timetext.Parse(line, now)
		if !ok {
			log.Printf("⚠️ %s: unparseable schedule line %q, skipped", src.Name, line)
			skipped++
			continue
		}
		ev := entities.ScheduleEvent{Category: src.Category, StartsAt: startsAt}
		if seen[ev.Key()] {
			continue
		}
		seen[ev.Key()] = true
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, skipped, nil
}

// Upcoming returns events starting in [now, now+d], ascending, at most
// maxUpcoming of them.
func (s *ScheduleService) Upcoming(now time.Time, d time.Duration) []entities.ScheduleEvent {
	limit := now.Add(d)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.ScheduleEvent
	for _, ev := range s.events {
		if ev.StartsAt.Before(now) {
			continue
		}
		if ev.StartsAt.After(limit) {
			break
		}
		out = append(out, ev)
		if len(out) == maxUpcoming {
			break
		}
	}
	return out
}

// Next returns the earliest event starting at or after now.
func (s *ScheduleService) Next(now time.Time) (entities.ScheduleEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if !ev.StartsAt.Before(now) {
			return ev, true
		}
	}
	return entities.ScheduleEvent{}, false
}

// Events returns a snapshot of the whole catalog for the tick sweep.
func (s *ScheduleService) Events() []entities.ScheduleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.ScheduleEvent, len(s.events))
	copy(out, s.events)
	return out
}

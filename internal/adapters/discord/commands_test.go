package discord

import (
	"context"
	"strings"
	"testing"
	"time"

	"herald/internal/domain/entities"
	"herald/internal/infrastructure/i18n"
	"herald/internal/ports/input"
)

type fakeSchedule struct {
	events []entities.ScheduleEvent
	report input.ReloadReport
	err    error
}

func (f *fakeSchedule) Reload(context.Context) (input.ReloadReport, error) {
	return f.report, f.err
}

func (f *fakeSchedule) Upcoming(now time.Time, d time.Duration) []entities.ScheduleEvent {
	limit := now.Add(d)
	var out []entities.ScheduleEvent
	for _, ev := range f.events {
		if !ev.StartsAt.Before(now) && !ev.StartsAt.After(limit) {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeSchedule) Next(now time.Time) (entities.ScheduleEvent, bool) {
	for _, ev := range f.events {
		if !ev.StartsAt.Before(now) {
			return ev, true
		}
	}
	return entities.ScheduleEvent{}, false
}

func newTestHandler(schedule *fakeSchedule) *Handler {
	return NewHandler(schedule, i18n.NewTranslator("en"), "en", "!herald")
}

func TestStatusReply(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	h := newTestHandler(&fakeSchedule{})
	if got := h.statusReply(now); got != "No upcoming events." {
		t.Errorf("empty catalog reply = %q", got)
	}

	h = newTestHandler(&fakeSchedule{events: []entities.ScheduleEvent{
		{Category: "ruins", StartsAt: time.Date(2024, 3, 2, 14, 30, 0, 0, time.UTC)},
	}})
	got := h.statusReply(now)
	for _, want := range []string{"ruins", "Sat 02.03. 14:30", "26h30m"} {
		if !strings.Contains(got, want) {
			t.Errorf("status reply %q missing %q", got, want)
		}
	}
}

func TestWindowReply(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newTestHandler(&fakeSchedule{events: []entities.ScheduleEvent{
		{Category: "ruins", StartsAt: now.Add(24 * time.Hour)},
		{Category: "altar", StartsAt: now.Add(48 * time.Hour)},
		{Category: "ruins", StartsAt: now.Add(40 * 24 * time.Hour)}, // outside both windows
	}})

	got := h.windowReply(now, 7*24*time.Hour, "7 days")
	if !strings.Contains(got, "next 7 days") {
		t.Errorf("week reply missing header: %q", got)
	}
	if n := strings.Count(got, "•"); n != 2 {
		t.Errorf("week reply lists %d events, want 2:\n%s", n, got)
	}

	got = h.windowReply(now, now.AddDate(0, 1, 0).Sub(now), "month")
	if n := strings.Count(got, "•"); n != 2 {
		t.Errorf("month reply lists %d events, want 2:\n%s", n, got)
	}

	if got := h.windowReply(now.AddDate(1, 0, 0), time.Hour, "7 days"); !strings.Contains(got, "No events") {
		t.Errorf("empty window reply = %q", got)
	}
}

func TestReloadReply(t *testing.T) {
	h := newTestHandler(&fakeSchedule{report: input.ReloadReport{
		Categories: []input.CategoryCount{{Category: "ruins", Count: 12}, {Category: "altar", Count: 8}},
		Total:      20,
		Skipped:    1,
		Pruned:     3,
	}})

	got := h.reloadReply(context.Background())
	for _, want := range []string{"ruins: 12", "altar: 8", "20 events", "1 lines skipped", "3 ledger entries pruned"} {
		if !strings.Contains(got, want) {
			t.Errorf("reload reply %q missing %q", got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{26*time.Hour + 30*time.Minute, "26h30m"},
		{59 * time.Minute, "59m"},
		{time.Hour, "1h00m"},
		{90*time.Minute + 29*time.Second, "1h30m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncateReply(t *testing.T) {
	short := "all good"
	if got := truncateReply(short); got != short {
		t.Errorf("short reply modified: %q", got)
	}

	long := strings.Repeat("é", maxReplyLen) // 2 bytes per rune, forces a boundary cut
	got := truncateReply(long)
	if !strings.HasSuffix(got, " …") {
		t.Error("missing truncation marker")
	}
	if !utf8ValidString(got) {
		t.Error("truncation split a rune")
	}
	if len(got) > maxReplyLen+len(" …") {
		t.Errorf("truncated reply still too long: %d bytes", len(got))
	}
}

func utf8ValidString(s string) bool {
	for _, r := range s {
		if r == '�' {
			return false
		}
	}
	return true
}

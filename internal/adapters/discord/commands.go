package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// maxReplyLen keeps replies under Discord's 2000-character message limit
// with room for the truncation marker.
const maxReplyLen = 1800

const eventTimeLayout = "Mon 02.01. 15:04"

// HandleMessage routes "<prefix> <subcommand>" messages. An unknown or
// missing subcommand falls back to help; queries never mutate the catalog.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	content := strings.TrimSpace(m.Content)
	if content != h.prefix && !strings.HasPrefix(content, h.prefix+" ") {
		return
	}

	cmd := ""
	if args := strings.Fields(strings.TrimPrefix(content, h.prefix)); len(args) > 0 {
		cmd = strings.ToLower(args[0])
	}

	now := time.Now().UTC()
	var reply string
	switch cmd {
	case "status":
		reply = h.statusReply(now)
	case "week":
		reply = h.windowReply(now, 7*24*time.Hour, "7 days")
	case "month":
		reply = h.windowReply(now, now.AddDate(0, 1, 0).Sub(now), "month")
	case "reload":
		reply = h.reloadReply(context.Background())
	default:
		reply = h.translator.T(h.locale, "help", map[string]any{"Prefix": h.prefix})
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, truncateReply(reply)); err != nil {
		log.Printf("❌ reply to %q command not sent: %v", cmd, err)
	}
}

func (h *Handler) statusReply(now time.Time) string {
	ev, ok := h.schedule.Next(now)
	if !ok {
		return h.translator.T(h.locale, "status_none", nil)
	}
	return h.translator.T(h.locale, "status_next", map[string]any{
		"Category": ev.Category,
		"When":     ev.StartsAt.Format(eventTimeLayout),
		"In":       formatDuration(ev.StartsAt.Sub(now)),
	})
}

func (h *Handler) windowReply(now time.Time, d time.Duration, window string) string {
	events := h.schedule.Upcoming(now, d)
	if len(events) == 0 {
		return h.translator.T(h.locale, "list_none", map[string]any{"Window": window})
	}

	var b strings.Builder
	b.WriteString(h.translator.T(h.locale, "list_header", map[string]any{"Window": window}))
	for _, ev := range events {
		b.WriteString(fmt.Sprintf("\n• `%s` — **%s**", ev.StartsAt.Format(eventTimeLayout), ev.Category))
	}
	return b.String()
}

func (h *Handler) reloadReply(ctx context.Context) string {
	report, err := h.schedule.Reload(ctx)
	if err != nil {
		log.Printf("❌ reload command failed: %v", err)
		return h.translator.T(h.locale, "reload_failed", nil)
	}

	details := make([]string, 0, len(report.Categories))
	for _, c := range report.Categories {
		details = append(details, fmt.Sprintf("%s: %d", c.Category, c.Count))
	}
	return h.translator.T(h.locale, "reload_report", map[string]any{
		"Detail":  strings.Join(details, ", "),
		"Total":   report.Total,
		"Skipped": report.Skipped,
		"Pruned":  report.Pruned,
	})
}

// formatDuration renders a lead time like "26h30m", minute resolution.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// truncateReply cuts over-long replies at a rune boundary and appends a
// marker so the reader knows the list continues.
func truncateReply(s string) string {
	if len(s) <= maxReplyLen {
		return s
	}
	cut := maxReplyLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + " …"
}

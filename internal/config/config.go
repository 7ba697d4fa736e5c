package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ScheduleSource maps a category label to its schedule file name inside
// ScheduleDir.
type ScheduleSource struct {
	Category string
	File     string
}

type Config struct {
	Token             string
	AnnounceChannelID string
	CommandPrefix     string
	ReminderPhrase    string
	ScheduleDir       string
	Sources           []ScheduleSource
	LedgerFile        string
	Locale            string
	WatchFiles        bool

	schedulesRaw string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment
		// itself (Docker, CI, systemd unit, ...).
	}

	cfg := &Config{
		Token:             os.Getenv("TOKEN"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),
		CommandPrefix:     os.Getenv("COMMAND_PREFIX"),
		ReminderPhrase:    os.Getenv("REMINDER_PHRASE"),
		ScheduleDir:       os.Getenv("SCHEDULE_DIR"),
		LedgerFile:        os.Getenv("LEDGER_FILE"),
		Locale:            os.Getenv("LOCALE"),
		WatchFiles:        true,
		schedulesRaw:      os.Getenv("SCHEDULES"),
	}
	if raw := strings.TrimSpace(os.Getenv("WATCH_FILES")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("config: WATCH_FILES must be a boolean, got %q", raw)
		}
		cfg.WatchFiles = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration and fills in
// the defaults for the optional fields.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.AnnounceChannelID) == "" {
		return fmt.Errorf("config: ANNOUNCE_CHANNEL_ID is required and cannot be empty")
	}
	for _, r := range c.AnnounceChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: ANNOUNCE_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}

	if strings.TrimSpace(c.CommandPrefix) == "" {
		c.CommandPrefix = "!herald"
	}
	if strings.TrimSpace(c.ReminderPhrase) == "" {
		c.ReminderPhrase = "starts in one hour!"
	}
	if strings.TrimSpace(c.ScheduleDir) == "" {
		c.ScheduleDir = "."
	}
	if strings.TrimSpace(c.LedgerFile) == "" {
		c.LedgerFile = "notified.json"
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}

	if strings.TrimSpace(c.schedulesRaw) == "" {
		c.schedulesRaw = "ruins:ruins.txt,altar:altar.txt"
	}
	sources, err := parseSchedules(c.schedulesRaw)
	if err != nil {
		return err
	}
	c.Sources = sources

	return nil
}

// parseSchedules parses the SCHEDULES value, a comma-separated list of
// category:file pairs, e.g. "ruins:ruins.txt,altar:altar.txt".
func parseSchedules(raw string) ([]ScheduleSource, error) {
	var sources []ScheduleSource
	seen := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		category, file, found := strings.Cut(entry, ":")
		category = strings.TrimSpace(category)
		file = strings.TrimSpace(file)
		if !found || category == "" || file == "" {
			return nil, fmt.Errorf("config: SCHEDULES entry %q is not category:file", entry)
		}
		if seen[category] {
			return nil, fmt.Errorf("config: SCHEDULES lists category %q twice", category)
		}
		seen[category] = true
		sources = append(sources, ScheduleSource{Category: category, File: file})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("config: SCHEDULES has no usable entries (%q)", raw)
	}
	return sources, nil
}

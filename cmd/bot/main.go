package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/afero"

	"herald/internal/adapters/discord"
	"herald/internal/config"
	"herald/internal/infrastructure/i18n"
	"herald/internal/infrastructure/ledger"
	"herald/internal/infrastructure/schedulefile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	fs := afero.NewOsFs()
	store := schedulefile.NewStore(fs, cfg.ScheduleDir)
	warned := ledger.Open(fs, cfg.LedgerFile)
	translator := i18n.NewTranslator(cfg.Locale)

	bot := discord.NewBot(cfg, store, warned, translator)

	ctx := context.Background()
	report, err := bot.Schedule().Reload(ctx)
	if err != nil {
		log.Fatalf("❌ Initial schedule load failed: %v", err)
	}
	log.Printf("✅ Schedule loaded: %d events (%d lines skipped, %d ledger entries pruned)",
		report.Total, report.Skipped, report.Pruned)

	if cfg.WatchFiles {
		paths := make([]string, 0, len(cfg.Sources))
		for _, src := range cfg.Sources {
			paths = append(paths, store.Path(src.File))
		}
		watcher, err := schedulefile.NewWatcher(paths, func() {
			report, err := bot.Schedule().Reload(context.Background())
			if err != nil {
				log.Printf("⚠️ Auto-reload failed: %v", err)
				return
			}
			log.Printf("🔄 Schedule files changed, reloaded: %d events", report.Total)
		})
		if err != nil {
			log.Printf("⚠️ Schedule watcher not started: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot exited with an error: %v", err)
		os.Exit(1)
	}
}

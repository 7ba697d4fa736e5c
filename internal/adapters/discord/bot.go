package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"herald/internal/application"
	"herald/internal/config"
	"herald/internal/ports/input"
	"herald/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	handler  *Handler
	schedule input.ScheduleUseCase
	warnings input.WarningUseCase
}

// NewBot creates a Bot and wires ports: output adapters -> application
// (use cases) -> handler.
func NewBot(cfg *config.Config, store output.ScheduleStore, ledger output.NotificationLedger, translator output.T) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Failed to create the Discord session:", err)
	}
	// Prefix commands arrive as plain guild messages.
	s.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	sources := make([]application.Source, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		sources = append(sources, application.Source{Category: src.Category, Name: src.File})
	}
	scheduleUC := application.NewScheduleService(store, ledger, sources)
	warningUC := application.NewWarningService(
		scheduleUC,
		ledger,
		NewNotifier(s, cfg.AnnounceChannelID),
		translator,
		cfg.Locale,
		cfg.ReminderPhrase,
	)

	bot := &Bot{
		session:  s,
		config:   cfg,
		handler:  NewHandler(scheduleUC, translator, cfg.Locale, cfg.CommandPrefix),
		schedule: scheduleUC,
		warnings: warningUC,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleMessage)
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.handler.HandleMessage(s, m)
}

// Schedule exposes the schedule use case for startup loading and the file
// watcher wired in main.
func (b *Bot) Schedule() input.ScheduleUseCase {
	return b.schedule
}

// Start runs the bot and the warning ticker until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening the session: %w", err)
	}
	defer b.session.Close()

	done := make(chan struct{})
	go b.runTicker(done)
	defer close(done)

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}

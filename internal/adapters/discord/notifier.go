package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"herald/internal/ports/output"
)

// Ensure Notifier implements the output.Notifier port.
var _ output.Notifier = (*Notifier)(nil)

// Notifier posts warnings to the announcement channel. One attempt per call;
// the caller decides whether a failure is retried.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

func NewNotifier(session *discordgo.Session, channelID string) *Notifier {
	return &Notifier{session: session, channelID: channelID}
}

func (n *Notifier) Send(_ context.Context, text string) error {
	if _, err := n.session.ChannelMessageSend(n.channelID, text); err != nil {
		return fmt.Errorf("send to channel %s: %w", n.channelID, err)
	}
	return nil
}

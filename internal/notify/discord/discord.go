// Package discord implements the notify.Notifier for a Discord channel.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// discordClient abstracts the discordgo methods we use, enabling test mocks.
type discordClient interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts messages to one Discord channel.
type Notifier struct {
	client    discordClient
	channelID string
}

// Opts holds parameters for creating a Discord Notifier.
type Opts struct {
	BotToken  string
	ChannelID string
	// For testing: inject a mock client instead of a real session.
	Client discordClient
}

// New creates a Discord Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel id is required")
	}
	client := opts.Client
	if client == nil {
		if opts.BotToken == "" {
			return nil, fmt.Errorf("discord: bot token is required")
		}
		session, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		client = session
	}
	return &Notifier{client: client, channelID: opts.ChannelID}, nil
}

// Name identifies this destination in error reports.
func (n *Notifier) Name() string { return "discord" }

// Post sends text to the configured channel.
func (n *Notifier) Post(text string) error {
	if _, err := n.client.ChannelMessageSend(n.channelID, text); err != nil {
		return fmt.Errorf("post to %s: %w", n.channelID, err)
	}
	return nil
}

// Package slack implements the notify.Notifier for a Slack channel.
package slack

import (
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessage(channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Notifier posts messages to one Slack channel.
type Notifier struct {
	client    slackClient
	channelID string
}

// Opts holds parameters for creating a Slack Notifier.
type Opts struct {
	BotToken  string // xoxb-... Slack bot token
	ChannelID string
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// New creates a Slack Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("slack: channel id is required")
	}
	client := opts.Client
	if client == nil {
		if opts.BotToken == "" {
			return nil, fmt.Errorf("slack: bot token is required")
		}
		client = slackapi.New(opts.BotToken)
	}
	return &Notifier{client: client, channelID: opts.ChannelID}, nil
}

// Name identifies this destination in error reports.
func (n *Notifier) Name() string { return "slack" }

// Post sends text to the configured channel.
func (n *Notifier) Post(text string) error {
	_, _, err := n.client.PostMessage(n.channelID, slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("post to %s: %w", n.channelID, err)
	}
	return nil
}

package notify

import (
	"github.com/tinrooster/cabledb/internal/config"
	"github.com/tinrooster/cabledb/internal/notify/discord"
	"github.com/tinrooster/cabledb/internal/notify/slack"
)

// FromConfig builds the notifier set for every configured destination. An
// empty configuration yields an empty Multi, which posts to nobody.
func FromConfig(cfg config.NotifyConfig) (Multi, error) {
	var m Multi
	if cfg.Slack.BotToken != "" {
		n, err := slack.New(slack.Opts{BotToken: cfg.Slack.BotToken, ChannelID: cfg.Slack.ChannelID})
		if err != nil {
			return nil, err
		}
		m = append(m, n)
	}
	if cfg.Discord.BotToken != "" {
		n, err := discord.New(discord.Opts{BotToken: cfg.Discord.BotToken, ChannelID: cfg.Discord.ChannelID})
		if err != nil {
			return nil, err
		}
		m = append(m, n)
	}
	return m, nil
}

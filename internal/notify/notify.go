// Package notify announces benchmark outcomes to chat channels.
package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/slack-go/slack"
	"github.com/spf13/viper"
)

// Notifier sends a short message about a benchmark outcome.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// slackAPI is the subset of the Slack client we use, extracted for tests.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier posts messages to a Slack channel.
type SlackNotifier struct {
	client  slackAPI
	channel string
}

// NewSlackNotifier builds a notifier from configuration. The bot token
// comes from SLACK_BOT_TOKEN, the channel from notifications.slack.channel.
func NewSlackNotifier() (*SlackNotifier, error) {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is not set")
	}

	channel := viper.GetString("notifications.slack.channel")
	if channel == "" {
		return nil, fmt.Errorf("notifications.slack.channel is not configured")
	}

	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
	}, nil
}

// Notify posts the message to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("slack notification failed: %w", err)
	}
	return nil
}

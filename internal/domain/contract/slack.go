package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// AddReactionContext adds an emoji reaction to a message
	AddReactionContext(ctx context.Context, name string, item slack.ItemRef) error

	// KickUserFromConversationContext removes a user from a channel
	KickUserFromConversationContext(ctx context.Context, channelID string, user string) error
}

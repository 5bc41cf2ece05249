package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// broadcastMention matches Slack's channel-wide mention markup, e.g. <!here>
// or <!channel|channel>.
var broadcastMention = regexp.MustCompile(`<!(channel|here|everyone)(\|[^>]*)?>`)

// slackGateway is the Slack implementation of contract.Gateway. All calls
// share one limiter to stay under Slack's per-method rate tiers.
type slackGateway struct {
	slackClient contract.SlackClient
	limiter     *rate.Limiter
	opts        Options
	log         zerolog.Logger
	now         func() time.Time
}

func newGateway(slackClient contract.SlackClient, opts Options, log zerolog.Logger) *slackGateway {
	opts = opts.withDefaults()
	return &slackGateway{
		slackClient: slackClient,
		limiter:     rate.NewLimiter(rate.Limit(opts.SlackRateLimit), 1),
		opts:        opts,
		log:         log.With().Str("component", "gateway").Logger(),
		now:         time.Now,
	}
}

// Deliver posts the reminder. The returned SentAt is the instant the deadline
// shown in the message was computed from.
func (g *slackGateway) Deliver(ctx context.Context, reminder *entity.Reminder) (entity.Delivery, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return entity.Delivery{}, err
	}

	sentAt := g.now()
	channel, ts, err := g.slackClient.PostMessageContext(ctx, reminder.ChannelID,
		slack.MsgOptionText(g.formatMessage(reminder, sentAt), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return entity.Delivery{}, fmt.Errorf("failed to send Slack message: %w", err)
	}
	if channel == "" {
		channel = reminder.ChannelID
	}

	return entity.Delivery{
		Message: entity.MessageRef{Channel: channel, Timestamp: ts},
		SentAt:  sentAt,
	}, nil
}

func (g *slackGateway) RequestAcknowledgement(ctx context.Context, ref entity.MessageRef) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	err := g.slackClient.AddReactionContext(ctx, g.emoji(), slack.NewRefToMessage(ref.Channel, ref.Timestamp))
	if err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}

// Enforce removes the reminder's user from the reminder's channel.
func (g *slackGateway) Enforce(ctx context.Context, reminder *entity.Reminder) error {
	if !g.opts.AutoKickEnabled {
		return entity.ErrEnforcementDisabled
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	if err := g.slackClient.KickUserFromConversationContext(ctx, reminder.ChannelID, reminder.UserID); err != nil {
		return fmt.Errorf("failed to remove user from channel: %w", err)
	}

	g.log.Info().
		Int64("reminder_id", reminder.ID).
		Str("user_id", reminder.UserID).
		Str("channel_id", reminder.ChannelID).
		Msg("user removed from channel")
	return nil
}

func (g *slackGateway) emoji() string {
	return strings.Trim(strings.TrimSpace(g.opts.AckEmoji), ":")
}

func (g *slackGateway) formatMessage(reminder *entity.Reminder, sentAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 <@%s> %s", reminder.UserID, sanitizeMessage(reminder.Message))

	if reminder.AckRequired {
		deadline := entity.AckDeadline(sentAt, g.opts.AckTimeout)
		fallback := deadline.In(g.opts.Location).Format("Jan 2 15:04 MST")
		fmt.Fprintf(&b, "\n\nReact with :%s: before <!date^%d^{date_short_pretty} at {time}|%s> to confirm.",
			g.emoji(), deadline.Unix(), fallback)
	}

	return b.String()
}

// sanitizeMessage defuses channel-wide mentions so a recurring reminder cannot
// ping a whole channel. The target user is still mentioned explicitly.
func sanitizeMessage(text string) string {
	return strings.TrimSpace(broadcastMention.ReplaceAllString(text, "[@$1]"))
}

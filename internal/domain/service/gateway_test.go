package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_slackGateway_Deliver(t *testing.T) {
	reminder := &entity.Reminder{ID: 7, UserID: "U123", ChannelID: "C123", Message: "Stand up"}

	t.Run("Should return reference of posted message", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		ctx := context.Background()
		sentAt := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
		m.mockSlackClient.EXPECT().
			PostMessageContext(ctx, "C123", gomock.Any(), gomock.Any()).
			Return("C123", "1704186000.000100", nil)

		g := newGateway(m.mockSlackClient, testOptions(), zerolog.Nop())
		g.now = func() time.Time { return sentAt }
		d, err := g.Deliver(ctx, reminder)

		require.NoError(t, err)
		assert.Equal(t, entity.MessageRef{Channel: "C123", Timestamp: "1704186000.000100"}, d.Message)
		assert.True(t, d.SentAt.Equal(sentAt))
	})

	t.Run("Should post sanitized text", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		ctx := context.Background()
		loud := &entity.Reminder{ID: 8, UserID: "U123", ChannelID: "C123", Message: "<!channel> deploy freeze, <!here|here> too"}
		m.mockSlackClient.EXPECT().
			PostMessageContext(ctx, "C123", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				assert.Equal(t, "🔔 <@U123> [@channel] deploy freeze, [@here] too", postedText(t, channelID, options...))
				return channelID, "1704186000.000200", nil
			})

		g := newGateway(m.mockSlackClient, testOptions(), zerolog.Nop())
		_, err := g.Deliver(ctx, loud)
		require.NoError(t, err)
	})

	t.Run("Should return error when Slack rejects the message", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.mockSlackClient.EXPECT().
			PostMessageContext(ctx, "C123", gomock.Any(), gomock.Any()).
			Return("", "", errors.New("channel_not_found"))

		g := newGateway(m.mockSlackClient, testOptions(), zerolog.Nop())
		_, err := g.Deliver(ctx, reminder)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel_not_found")
	})
}

func Test_slackGateway_formatMessage(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	g := newGateway(m.mockSlackClient, testOptions(), zerolog.Nop())
	sentAt := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	plain := g.formatMessage(&entity.Reminder{UserID: "U123", Message: "Stand up"}, sentAt)
	assert.Equal(t, "🔔 <@U123> Stand up", plain)

	withAck := g.formatMessage(&entity.Reminder{UserID: "U123", Message: "Stand up", AckRequired: true}, sentAt)
	assert.Contains(t, withAck, "React with :white_check_mark:")
	assert.Contains(t, withAck, "<!date^1704358800^")
	assert.Contains(t, withAck, "Jan 4 09:00 UTC")

	// a fractional send time rounds the shown deadline up, like the stored one
	rounded := g.formatMessage(&entity.Reminder{UserID: "U123", Message: "Stand up", AckRequired: true}, sentAt.Add(300*time.Millisecond))
	assert.Contains(t, rounded, "<!date^1704358801^")
}

func Test_sanitizeMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Should keep plain text", in: "Stand up", want: "Stand up"},
		{name: "Should keep user mentions", in: "ask <@U999> first", want: "ask <@U999> first"},
		{name: "Should defuse channel mention", in: "<!channel> lunch", want: "[@channel] lunch"},
		{name: "Should defuse labelled here mention", in: "hey <!here|here>", want: "hey [@here]"},
		{name: "Should defuse everyone mention", in: "<!everyone>", want: "[@everyone]"},
		{name: "Should keep date markup", in: "due <!date^1704358800^{date}|Jan 4>", want: "due <!date^1704358800^{date}|Jan 4>"},
		{name: "Should trim surrounding space", in: "  Stand up  ", want: "Stand up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeMessage(tt.in))
		})
	}
}

// postedText renders the message options the way the Slack client would send
// them and returns the text field.
func postedText(t *testing.T, channelID string, options ...slack.MsgOption) string {
	t.Helper()

	_, values, err := slack.UnsafeApplyMsgOptions("", channelID, "", options...)
	require.NoError(t, err)
	return values.Get("text")
}

func Test_slackGateway_RequestAcknowledgement(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ref := entity.MessageRef{Channel: "C123", Timestamp: "1.2"}
	m.mockSlackClient.EXPECT().
		AddReactionContext(ctx, "white_check_mark", slack.NewRefToMessage("C123", "1.2")).
		Return(nil)

	opts := testOptions()
	opts.AckEmoji = ":white_check_mark:"
	g := newGateway(m.mockSlackClient, opts, zerolog.Nop())

	assert.NoError(t, g.RequestAcknowledgement(ctx, ref))
}

func Test_slackGateway_Enforce(t *testing.T) {
	reminder := &entity.Reminder{ID: 7, UserID: "U123", ChannelID: "C123"}

	t.Run("Should remove user from channel", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.mockSlackClient.EXPECT().KickUserFromConversationContext(ctx, "C123", "U123").Return(nil).Times(1)

		g := newGateway(m.mockSlackClient, testOptions(), zerolog.Nop())
		assert.NoError(t, g.Enforce(ctx, reminder))
	})

	t.Run("Should not call Slack when removal is disabled", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		opts := testOptions()
		opts.AutoKickEnabled = false
		g := newGateway(m.mockSlackClient, opts, zerolog.Nop())

		assert.ErrorIs(t, g.Enforce(context.Background(), reminder), entity.ErrEnforcementDisabled)
	})

	t.Run("Should wrap Slack error", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.mockSlackClient.EXPECT().KickUserFromConversationContext(ctx, "C123", "U123").Return(errors.New("cant_kick_self"))

		g := newGateway(m.mockSlackClient, testOptions(), zerolog.Nop())
		err := g.Enforce(ctx, reminder)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cant_kick_self")
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_acknowledgementService_HandleReaction(t *testing.T) {
	created := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	ref := entity.MessageRef{Channel: "C123", Timestamp: "1704186000.000100"}

	newAck := func() *entity.Acknowledgement {
		ack := entity.NewAcknowledgement(7, ref, created, 48*time.Hour)
		ack.ID = 11
		return ack
	}
	reminder := &entity.Reminder{ID: 7, UserID: "U123", ChannelID: "C123", Status: entity.ReminderActive}

	event := func(mutate func(e *entity.ReactionEvent)) entity.ReactionEvent {
		e := entity.ReactionEvent{
			Message:   ref,
			UserID:    "U123",
			Emoji:     "white_check_mark",
			Timestamp: created.Add(time.Hour),
		}
		if mutate != nil {
			mutate(&e)
		}
		return e
	}

	tests := []struct {
		name      string
		event     entity.ReactionEvent
		buildMock func(ctx context.Context, m allMocks)
		want      bool
		wantErr   bool
	}{
		{
			name:  "Should acknowledge matching reaction",
			event: event(nil),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(newAck(), nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
				m.mockAcknowledgementRepo.EXPECT().Transition(ctx, gomock.Any(), entity.AckPending).
					DoAndReturn(func(_ context.Context, ack *entity.Acknowledgement, _ entity.AckStatus) (bool, error) {
						assert.Equal(t, entity.AckAcknowledged, ack.Status)
						require.NotNil(t, ack.ResolvedAt)
						assert.True(t, ack.ResolvedAt.Equal(created.Add(time.Hour)))
						return true, nil
					})
			},
			want: true,
		},
		{
			name:  "Should accept colon wrapped emoji with skin tone",
			event: event(func(e *entity.ReactionEvent) { e.Emoji = ":white_check_mark::skin-tone-3:" }),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(newAck(), nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
				m.mockAcknowledgementRepo.EXPECT().Transition(ctx, gomock.Any(), entity.AckPending).Return(true, nil)
			},
			want: true,
		},
		{
			name:  "Should ignore other emoji",
			event: event(func(e *entity.ReactionEvent) { e.Emoji = "thumbsup" }),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(newAck(), nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
			},
		},
		{
			name:  "Should ignore reaction from another user",
			event: event(func(e *entity.ReactionEvent) { e.UserID = "U999" }),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(newAck(), nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
			},
		},
		{
			name:  "Should ignore reaction at expiry",
			event: event(func(e *entity.ReactionEvent) { e.Timestamp = created.Add(48 * time.Hour) }),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(newAck(), nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
			},
		},
		{
			name:  "Should ignore untracked message",
			event: event(nil),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(nil, nil)
			},
		},
		{
			name:  "Should ignore already expired acknowledgement",
			event: event(nil),
			buildMock: func(ctx context.Context, m allMocks) {
				ack := newAck()
				ack.Status = entity.AckExpired
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(ack, nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
			},
		},
		{
			name:  "Should report false when scan loop expired it first",
			event: event(nil),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(newAck(), nil)
				m.mockReminderRepo.EXPECT().GetByID(ctx, int64(7)).Return(reminder, nil)
				m.mockAcknowledgementRepo.EXPECT().Transition(ctx, gomock.Any(), entity.AckPending).Return(false, nil)
			},
		},
		{
			name:  "Should return error when lookup fails",
			event: event(nil),
			buildMock: func(ctx context.Context, m allMocks) {
				m.mockAcknowledgementRepo.EXPECT().GetByMessage(ctx, ref).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			ctx := context.Background()
			tt.buildMock(ctx, m)

			s := newAcknowledgement(m.mockDataManager, testOptions(), zerolog.Nop())
			got, err := s.HandleReaction(ctx, tt.event)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_acknowledgementService_Cleanup(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	m.mockAcknowledgementRepo.EXPECT().
		DeleteResolvedBefore(ctx, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)).
		Return(int64(4), nil)

	s := newAcknowledgement(m.mockDataManager, testOptions(), zerolog.Nop())
	n, err := s.Cleanup(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

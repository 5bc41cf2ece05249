package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager         *mocks.MockDataManager
	mockReminderRepo        *mocks.MockReminderRepo
	mockAcknowledgementRepo *mocks.MockAcknowledgementRepo
	mockSlackClient         *mocks.MockSlackClient
	mockGateway             *mocks.MockGateway
	mockAckService          *mocks.MockAcknowledgementService
}

func testOptions() Options {
	return Options{
		Location:            time.UTC,
		AdminUserIDs:        []string{"UADMIN"},
		MaxRemindersPerUser: 2,
		MaxMessageLength:    50,
		AckTimeout:          48 * time.Hour,
		AckEmoji:            "white_check_mark",
		AckRetention:        7 * 24 * time.Hour,
		AutoKickEnabled:     true,
		TickInterval:        time.Minute,
		CleanupSchedule:     "@daily",
		SlackRateLimit:      1000,
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	acknowledgementRepo := mocks.NewMockAcknowledgementRepo(ctrl)
	dm.EXPECT().Acknowledgement().Return(acknowledgementRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:         dm,
		mockReminderRepo:        reminderRepo,
		mockAcknowledgementRepo: acknowledgementRepo,
		mockSlackClient:         mocks.NewMockSlackClient(ctrl),
		mockGateway:             mocks.NewMockGateway(ctrl),
		mockAckService:          mocks.NewMockAcknowledgementService(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockSlackClient, testOptions(), zerolog.Nop())
	require.NotNil(t, instance)

	return
}

package service

import "github.com/diegoclair/slack-reminder-bot/internal/domain/contract"

var (
	_ contract.ReminderService        = (*reminderService)(nil)
	_ contract.AcknowledgementService = (*acknowledgementService)(nil)
	_ contract.Gateway                = (*slackGateway)(nil)
)

package service

import (
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

type Instance struct {
	Reminder        *reminderService
	Acknowledgement *acknowledgementService
	Gateway         *slackGateway
	Scheduler       *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, opts Options, log zerolog.Logger) *Instance {
	reminderService := newReminder(dm, slackClient, opts, log)
	acknowledgementService := newAcknowledgement(dm, opts, log)
	gateway := newGateway(slackClient, opts, log)

	return &Instance{
		Reminder:        reminderService,
		Acknowledgement: acknowledgementService,
		Gateway:         gateway,
		Scheduler:       newScheduler(dm, gateway, acknowledgementService, opts, log),
	}
}

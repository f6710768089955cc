package service

import (
	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type Instance struct {
	Standup  *standupService
	Notifier *Notifier
}

func New(dm contract.DataManager, slackClient contract.SlackClient, groups []entity.TimezoneGroup, notificationHour int, log *zap.Logger) *Instance {
	return &Instance{
		Standup:  newStandup(dm, groups, log),
		Notifier: newNotifier(slackClient, groups, notificationHour, log),
	}
}

package service

import (
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

const notificationText = "Good morning! Time for your standup: `/standup start`"

// Notifier decides, once per tick, whether each configured user should get
// their standup nudge. Per user it is a two state machine: a user flips to
// notified when their group's local hour matches the configured hour on a
// workday, and resets as soon as the hour no longer matches, so the message
// goes out at most once per matching-hour window.
type Notifier struct {
	slackClient contract.SlackClient
	groups      []entity.TimezoneGroup
	hour        int
	log         *zap.Logger

	notified map[string]bool
}

func newNotifier(slackClient contract.SlackClient, groups []entity.TimezoneGroup, hour int, log *zap.Logger) *Notifier {
	return &Notifier{
		slackClient: slackClient,
		groups:      groups,
		hour:        hour,
		log:         log,
		notified:    make(map[string]bool),
	}
}

// Tick evaluates every configured group against nowUTC and sends due
// notifications. A failed send leaves the user un-notified so the next tick
// retries it.
func (n *Notifier) Tick(nowUTC time.Time) {
	for _, group := range n.groups {
		hour, weekday, err := domain.LocalHourWeekday(nowUTC, group.Timezone)
		if err != nil {
			n.log.Warn("failed to resolve group timezone",
				zap.String("timezone", group.Timezone), zap.Error(err))
			continue
		}

		match := hour == n.hour && domain.IsWorkday(weekday)

		for _, user := range group.Users {
			if _, ok := domain.LookupTimezone(user, n.groups); !ok {
				// Ambiguous configuration, skip the user silently.
				n.log.Debug("user not in exactly one timezone group", zap.String("user", user))
				continue
			}

			if !match {
				n.notified[user] = false
				continue
			}
			if n.notified[user] {
				continue
			}

			if _, _, err := n.slackClient.PostMessage(user, slack.MsgOptionText(notificationText, false)); err != nil {
				// Not marked as notified, the next tick retries.
				n.log.Error("failed to send standup notification",
					zap.String("user", user), zap.Error(err))
				continue
			}

			n.log.Info("standup notification sent", zap.String("user", user))
			n.notified[user] = true
		}
	}
}

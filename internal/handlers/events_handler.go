package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/chatlog"
)

// EventsHandler feeds channel messages from the Slack Events API into the
// chat logger. It replaces the original runtime hook on the framework's
// message callback with an explicit subscription.
type EventsHandler struct {
	chatLogger    *chatlog.Logger
	signingSecret string
	log           *zap.Logger
}

func NewEvents(chatLogger *chatlog.Logger, signingSecret string, log *zap.Logger) *EventsHandler {
	return &EventsHandler{
		chatLogger:    chatLogger,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *EventsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	if err := verifySlackSignature(h.signingSecret, r.Header, body); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.logMessage(msg)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *EventsHandler) logMessage(msg *slackevents.MessageEvent) {
	// Only channel/group traffic is logged, like the original per-channel log.
	if msg.ChannelType != "channel" && msg.ChannelType != "group" {
		return
	}
	if msg.SubType != "" {
		// Skip edits, joins and other non-plain messages.
		return
	}

	ts := eventTime(msg.TimeStamp)
	if err := h.chatLogger.LogMessage(msg.Channel, msg.User, ts, msg.Text); err != nil {
		h.log.Error("failed to log channel message",
			zap.String("channel", msg.Channel), zap.Error(err))
	}
}

// eventTime converts a Slack "seconds.fraction" timestamp, falling back to
// the current time when it doesn't parse.
func eventTime(ts string) time.Time {
	secs, err := strconv.ParseFloat(ts, 64)
	if err != nil || secs <= 0 {
		return time.Now().UTC()
	}
	return time.Unix(int64(secs), 0).UTC()
}

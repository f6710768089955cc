package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-standup-bot/internal/slack"
)

type SlackHandler struct {
	standupService contract.StandupService
	signingSecret  string
	log            *zap.Logger
}

func New(standupService contract.StandupService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		standupService: standupService,
		signingSecret:  signingSecret,
		log:            log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
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

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(fmt.Sprintf("%v. Try `/standup help`.", err)))
		return
	}

	h.respond(w, h.handleCommand(cmd, &s))
}

func verifySlackSignature(signingSecret string, header http.Header, body []byte) error {
	verifier, err := slack.NewSecretsVerifier(header, signingSecret)
	if err != nil {
		return err
	}
	if _, err := verifier.Write(body); err != nil {
		return err
	}
	return verifier.Ensure()
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error("failed to encode slash command response", zap.Error(err))
	}
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStart:
		return h.handleStart(slashCmd)
	case slackcmd.CmdYesterday:
		return h.handleSetPart(domain.PartYesterday, cmd, slashCmd)
	case slackcmd.CmdToday:
		return h.handleSetPart(domain.PartToday, cmd, slashCmd)
	case slackcmd.CmdBlockers:
		return h.handleSetPart(domain.PartBlockers, cmd, slashCmd)
	case slackcmd.CmdReview:
		return h.handleReview(slashCmd)
	case slackcmd.CmdCommit:
		return h.handleCommit(slashCmd)
	case slackcmd.CmdLog:
		return h.handleLog(cmd, slashCmd)
	case slackcmd.CmdDelete:
		return h.handleDelete(cmd, slashCmd)
	case slackcmd.CmdTeam:
		return h.handleTeam(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Try `/standup help`.")
	}
}

func (h *SlackHandler) handleStart(slashCmd *slack.SlashCommand) *slack.Msg {
	h.standupService.Start(slashCmd.UserID)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "Standup started. Stage it with `yesterday`, `today` and `blockers`, then `commit`.",
	}
}

func (h *SlackHandler) handleSetPart(part domain.Part, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Args == "" {
		return h.createErrorResponse(fmt.Sprintf("Usage: `/standup %s <text>`", part))
	}

	if err := h.standupService.SetPart(slashCmd.UserID, part, cmd.Args); err != nil {
		return h.workflowErrorResponse(err, "Failed to stage your update.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Got it, %s staged.", part),
	}
}

func (h *SlackHandler) handleReview(slashCmd *slack.SlashCommand) *slack.Msg {
	staged := h.standupService.Review(slashCmd.UserID)

	lines := make([]string, 0, len(staged))
	for i, part := range domain.PartOrder {
		lines = append(lines, fmt.Sprintf("%s: %s", part, staged[i]))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.Join(lines, "\n"),
	}
}

func (h *SlackHandler) handleCommit(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.standupService.Commit(slashCmd.UserID); err != nil {
		return h.workflowErrorResponse(err, "Failed to save your standup.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> committed their standup!", slashCmd.UserID),
	}
}

func (h *SlackHandler) handleLog(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	date, msg := h.resolveDate(cmd.Args, slashCmd.UserID)
	if msg != nil {
		return msg
	}

	entries, err := h.standupService.Entries(slashCmd.UserID, date)
	if err != nil {
		h.log.Error("failed to load entries", zap.Error(err))
		return h.createErrorResponse("Failed to load your entries.")
	}

	lines := []string{fmt.Sprintf("Statuses for <@%s> on %s:", slashCmd.UserID, date)}
	if len(entries) == 0 {
		lines = append(lines, "(none)")
	}
	for _, entry := range entries {
		lines = append(lines, formatEntry(entry)...)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.Join(lines, "\n"),
	}
}

func (h *SlackHandler) handleDelete(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Args == "" {
		return h.createErrorResponse("Usage: `/standup delete <id>`")
	}

	id, err := strconv.ParseInt(cmd.Args, 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid id: %s", cmd.Args))
	}

	count, err := h.standupService.Delete(slashCmd.UserID, id)
	if err != nil {
		return h.workflowErrorResponse(err, "Failed to delete the entry.")
	}
	if count == 0 {
		return h.createErrorResponse(fmt.Sprintf("Couldn't delete id %d.", id))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Deleted: id %d.", id),
	}
}

func (h *SlackHandler) handleTeam(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	date, msg := h.resolveDate(cmd.Args, slashCmd.UserID)
	if msg != nil {
		return msg
	}

	entries, err := h.standupService.TeamEntries(date)
	if err != nil {
		h.log.Error("failed to load team entries", zap.Error(err))
		return h.createErrorResponse("Failed to load team entries.")
	}

	if len(entries) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No standups for %s.", date),
		}
	}

	lines := []string{fmt.Sprintf("Standups for %s:", date)}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("*<@%s>*:", entry.Author))
		lines = append(lines, formatEntry(entry)...)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.Join(lines, "\n"),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// resolveDate validates an explicit YYYY-MM-DD argument or falls back to the
// caller's local today. The second return value is non-nil on failure and is
// the reply to send.
func (h *SlackHandler) resolveDate(arg, userID string) (string, *slack.Msg) {
	if arg != "" {
		if _, err := time.Parse(domain.DateLayout, arg); err != nil {
			return "", h.createErrorResponse(fmt.Sprintf("Invalid date: %s (expected YYYY-MM-DD)", arg))
		}
		return arg, nil
	}

	date, err := h.standupService.LocalToday(userID)
	if err != nil {
		return "", h.workflowErrorResponse(err, "Failed to resolve your local date.")
	}
	return date, nil
}

func formatEntry(entry *entity.StandupEntry) []string {
	return []string{
		fmt.Sprintf("#%d yesterday: %s", entry.ID, entry.Yesterday),
		fmt.Sprintf("#%d today: %s", entry.ID, entry.Today),
		fmt.Sprintf("#%d blockers: %s", entry.ID, entry.Blockers),
	}
}

// workflowErrorResponse maps workflow errors to their own text and everything
// else to a generic message, keeping storage details away from users.
func (h *SlackHandler) workflowErrorResponse(err error, fallback string) *slack.Msg {
	if domain.IsWorkflowError(err) {
		return h.createErrorResponse(err.Error())
	}
	h.log.Error("command failed", zap.Error(err))
	return h.createErrorResponse(fallback)
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

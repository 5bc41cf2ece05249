package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-reminder-bot/internal/domain/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const (
	dateLayout = "Mon Jan 2 15:04 MST"
	recentAcks = 5
)

type SlackHandler struct {
	reminderService contract.ReminderService
	ackService      contract.AcknowledgementService
	signingSecret   string
	log             zerolog.Logger
}

func New(reminderService contract.ReminderService, ackService contract.AcknowledgementService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		reminderService: reminderService,
		ackService:      ackService,
		signingSecret:   signingSecret,
		log:             log.With().Str("component", "handler").Logger(),
	}
}

// verifyRequest checks the Slack signature and returns the raw body, leaving
// r.Body readable again for form parsing.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Str("path", r.URL.Path).Msg("rejected request with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verifyRequest(w, r); !ok {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if requiresAdmin(cmd.Type) {
		if msg := h.checkAdmin(ctx, slashCmd.UserID); msg != nil {
			return msg
		}
	}

	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAdd(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(ctx, slashCmd)
	case slackcmd.CmdInfo:
		return h.handleInfo(ctx, cmd)
	case slackcmd.CmdPause:
		return h.handlePause(ctx, cmd)
	case slackcmd.CmdResume:
		return h.handleResume(ctx, cmd)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, cmd)
	case slackcmd.CmdStats:
		return h.handleStats(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// requiresAdmin reports whether the command changes reminder state.
func requiresAdmin(t slackcmd.CommandType) bool {
	switch t {
	case slackcmd.CmdAdd, slackcmd.CmdPause, slackcmd.CmdResume, slackcmd.CmdDelete:
		return true
	}
	return false
}

func (h *SlackHandler) checkAdmin(ctx context.Context, userID string) *slack.Msg {
	isAdmin, err := h.reminderService.IsAdmin(ctx, userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("failed to check admin permission")
		return h.createErrorResponse("Could not verify your permissions, please try again")
	}
	if !isAdmin {
		return h.errorResponse(entity.ErrForbidden)
	}
	return nil
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	req, err := slackcmd.ParseAdd(cmd.Rest)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("%v\nUsage: `%s add @user daily [ack] [times=N] message`", err, domain.CommandName))
	}

	reminder, err := h.reminderService.Create(ctx, contract.CreateReminderInput{
		UserID:         req.UserID,
		ChannelID:      slashCmd.ChannelID,
		TeamID:         slashCmd.TeamID,
		CreatedBy:      slashCmd.UserID,
		Message:        req.Message,
		Frequency:      req.Frequency,
		AckRequired:    req.AckRequired,
		MaxOccurrences: req.MaxOccurrences,
	})
	if err != nil {
		return h.errorResponse(err)
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("✅ Reminder #%d created for <@%s> (%s)", reminder.ID, reminder.UserID, reminder.Frequency))
	text.WriteString(fmt.Sprintf("\nFirst reminder: %s", h.formatTime(reminder.NextDue)))
	if reminder.AckRequired {
		text.WriteString("\nA reaction is required on every reminder.")
	}
	if reminder.MaxOccurrences > 0 {
		text.WriteString(fmt.Sprintf("\nStops after %d reminders.", reminder.MaxOccurrences))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleList(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	reminders, err := h.reminderService.ListByChannel(ctx, slashCmd.ChannelID)
	if err != nil {
		return h.errorResponse(err)
	}

	if len(reminders) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No reminders in this channel. Use `%s add @user daily message` to create one.", domain.CommandName),
		}
	}

	var list strings.Builder
	list.WriteString("*Reminders in this channel:*\n")
	for _, r := range reminders {
		list.WriteString(fmt.Sprintf("• #%d <@%s> %s", r.ID, r.UserID, r.Frequency))
		if r.AckRequired {
			list.WriteString(" ✋")
		}
		switch r.Status {
		case entity.ReminderActive:
			list.WriteString(fmt.Sprintf(", next %s", h.formatTime(r.NextDue)))
		default:
			list.WriteString(fmt.Sprintf(" *(%s)*", r.Status))
		}
		list.WriteString(fmt.Sprintf(": %s\n", truncate(r.Message, 60)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleInfo(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	id, err := slackcmd.ParseID(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	reminder, err := h.reminderService.Get(ctx, id)
	if err != nil {
		return h.errorResponse(err)
	}

	acks, err := h.ackService.ListByReminder(ctx, id)
	if err != nil {
		return h.errorResponse(err)
	}

	var info strings.Builder
	info.WriteString(fmt.Sprintf("*Reminder #%d* for <@%s>\n", reminder.ID, reminder.UserID))
	info.WriteString(fmt.Sprintf("> %s\n", reminder.Message))
	info.WriteString(fmt.Sprintf("*Status:* %s\n", reminder.Status))
	info.WriteString(fmt.Sprintf("*Schedule:* %s `%s`\n", reminder.Frequency, reminder.RRule(h.reminderService.Location())))
	if reminder.Status == entity.ReminderActive {
		info.WriteString(fmt.Sprintf("*Next:* %s\n", h.formatTime(reminder.NextDue)))
	}
	if reminder.MaxOccurrences > 0 {
		info.WriteString(fmt.Sprintf("*Sent:* %d of %d\n", reminder.Occurrences, reminder.MaxOccurrences))
	} else {
		info.WriteString(fmt.Sprintf("*Sent:* %d\n", reminder.Occurrences))
	}
	info.WriteString(fmt.Sprintf("*Created by:* <@%s>\n", reminder.CreatedBy))

	if reminder.AckRequired {
		info.WriteString("*Acknowledgements:*")
		if len(acks) == 0 {
			info.WriteString(" none yet\n")
		} else {
			info.WriteString("\n")
		}
		for i, ack := range acks {
			if i == recentAcks {
				info.WriteString(fmt.Sprintf("_…and %d more_\n", len(acks)-recentAcks))
				break
			}
			info.WriteString(fmt.Sprintf("• %s %s", h.formatTime(ack.CreatedAt), ack.Status))
			if ack.FailureReason != "" {
				info.WriteString(fmt.Sprintf(" (%s)", ack.FailureReason))
			}
			info.WriteString("\n")
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         info.String(),
	}
}

func (h *SlackHandler) handlePause(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	id, err := slackcmd.ParseID(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	reminder, err := h.reminderService.Pause(ctx, id)
	if errors.Is(err, entity.ErrConflict) {
		return h.createErrorResponse(fmt.Sprintf("Reminder #%d is not active", id))
	}
	if err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⏸️ Reminder #%d for <@%s> paused. Use `%s resume %d` to continue.", reminder.ID, reminder.UserID, domain.CommandName, reminder.ID),
	}
}

func (h *SlackHandler) handleResume(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	id, err := slackcmd.ParseID(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	reminder, err := h.reminderService.Resume(ctx, id)
	if errors.Is(err, entity.ErrConflict) {
		return h.createErrorResponse(fmt.Sprintf("Reminder #%d is not paused", id))
	}
	if err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("▶️ Reminder #%d for <@%s> resumed.", reminder.ID, reminder.UserID),
	}
}

func (h *SlackHandler) handleDelete(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	id, err := slackcmd.ParseID(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.reminderService.Delete(ctx, id); err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🗑️ Reminder #%d deleted.", id),
	}
}

func (h *SlackHandler) handleStats(ctx context.Context) *slack.Msg {
	stats, err := h.reminderService.Stats(ctx)
	if err != nil {
		return h.errorResponse(err)
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Reminders:* %d\n", stats.TotalReminders()))
	for _, status := range entity.ReminderStatuses {
		text.WriteString(fmt.Sprintf("• %s: %d\n", status, stats.Reminders[status]))
	}
	text.WriteString("*Acknowledgements:*\n")
	for _, status := range entity.AckStatuses {
		text.WriteString(fmt.Sprintf("• %s: %d\n", status, stats.Acknowledgements[status]))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// errorResponse maps domain errors to a user-facing message. Unexpected
// errors are logged and hidden behind a generic reply.
func (h *SlackHandler) errorResponse(err error) *slack.Msg {
	switch {
	case errors.Is(err, entity.ErrForbidden):
		return h.createErrorResponse("Only workspace admins can manage reminders")
	case errors.Is(err, entity.ErrReminderNotFound):
		return h.createErrorResponse("Reminder not found")
	case errors.Is(err, entity.ErrReminderLimit),
		errors.Is(err, entity.ErrEmptyMessage),
		errors.Is(err, entity.ErrMessageTooLong),
		errors.Is(err, entity.ErrInvalidFrequency),
		errors.Is(err, entity.ErrMissingTarget),
		errors.Is(err, entity.ErrInvalidOccurrences),
		errors.Is(err, entity.ErrConflict):
		return h.createErrorResponse(err.Error())
	}

	h.log.Error().Err(err).Msg("command failed")
	return h.createErrorResponse("Something went wrong, please try again")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) formatTime(t time.Time) string {
	return t.In(h.reminderService.Location()).Format(dateLayout)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

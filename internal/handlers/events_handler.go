package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack/slackevents"
)

// HandleEvents serves the Events API endpoint. Only reaction_added is acted
// on; every other callback is acknowledged and dropped.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to parse event")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		if ev, ok := event.InnerEvent.Data.(*slackevents.ReactionAddedEvent); ok {
			h.handleReactionAdded(r, ev)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleReactionAdded(r *http.Request, ev *slackevents.ReactionAddedEvent) {
	reaction := entity.ReactionEvent{
		Message: entity.MessageRef{
			Channel:   ev.Item.Channel,
			Timestamp: ev.Item.Timestamp,
		},
		UserID:    ev.User,
		Emoji:     ev.Reaction,
		Timestamp: parseEventTime(ev.EventTimestamp),
	}

	acknowledged, err := h.ackService.HandleReaction(r.Context(), reaction)
	if err != nil {
		h.log.Error().Err(err).
			Str("message", reaction.Message.String()).
			Str("user_id", reaction.UserID).
			Msg("failed to handle reaction")
		return
	}

	if acknowledged {
		h.log.Debug().Str("message", reaction.Message.String()).Msg("reaction acknowledged reminder")
	}
}

// parseEventTime converts a Slack "1704186000.000200" timestamp, falling back
// to the receive time when it is missing or malformed.
func parseEventTime(ts string) time.Time {
	secs, err := strconv.ParseFloat(ts, 64)
	if err != nil || secs <= 0 {
		return time.Now()
	}
	whole := int64(secs)
	return time.Unix(whole, int64((secs-float64(whole))*1e9))
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

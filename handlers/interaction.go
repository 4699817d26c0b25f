// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/auth"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/middleware"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/models"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/render"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/store"
)

// handleInteraction applies a button press (vote, abstain, reveal) to the
// channel's current round and refreshes the published message in place.
func (h *EstimateHandler) handleInteraction(w http.ResponseWriter, r *http.Request, payload string) {
	var in models.Interaction
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "malformed interaction payload")
		return
	}
	if len(in.Actions) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "interaction carries no action")
		return
	}

	ctx := r.Context()

	team, err := h.store.TeamByChannel(ctx, in.Channel.ID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.Ephemeral(w, msgNotConfigured)
		return
	}
	if err != nil {
		slog.Error("team lookup failed", "error", err, "channel_id", in.Channel.ID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return
	}

	sess, err := h.store.SessionByChannel(ctx, team.ID, in.Channel.ID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.Ephemeral(w, msgNoActiveRound)
		return
	}
	if err != nil {
		slog.Error("session lookup failed", "error", err, "channel_id", in.Channel.ID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return
	}

	round, err := h.store.CurrentRound(ctx, sess.ID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.Ephemeral(w, msgNoActiveRound)
		return
	}
	if err != nil {
		slog.Error("current round lookup failed", "error", err, "session_id", sess.ID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return
	}

	action := in.Actions[0]
	switch {
	case action.ActionID == models.ActionReveal:
		if err := h.store.SetVisibility(ctx, round.ID, models.VisibilityRevealed); err != nil {
			slog.Error("failed to reveal round", "error", err, "round_id", round.ID)
			middleware.Ephemeral(w, msgStoreTrouble)
			return
		}
		slog.Info("round revealed", "round_id", round.ID, "by", in.User.ID)

	case action.ActionID == models.ActionAbstain:
		if !h.recordVote(ctx, w, round.ID, team.ID, in.User, models.PointsAbstain) {
			return
		}

	case strings.HasPrefix(action.ActionID, render.VoteActionPrefix):
		points, err := strconv.Atoi(action.Value)
		if err != nil || points == models.PointsAbstain || !models.ValidPoints(points) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid vote value")
			return
		}
		if !h.recordVote(ctx, w, round.ID, team.ID, in.User, points) {
			return
		}

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown action")
		return
	}

	h.refreshMessage(ctx, w, team.BotToken, in.Channel.ID, round.ID)
}

// recordVote reconciles one participant's vote into the round. Reports
// false after writing an error response itself.
func (h *EstimateHandler) recordVote(ctx context.Context, w http.ResponseWriter, roundID, teamID string, user models.InteractionUser, points int) bool {
	participantID := auth.ParticipantID(teamID, user.ID)

	if err := h.store.SetVote(ctx, roundID, participantID, points, user.DisplayName()); err != nil {
		slog.Error("failed to record vote", "error", err,
			"round_id", roundID, "participant_id", participantID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return false
	}

	slog.Info("vote recorded", "round_id", roundID, "participant_id", participantID)
	return true
}

// refreshMessage re-renders the round from stored state and edits the
// published message. The state change already committed, so an edit
// failure is soft: log it, tell the user, and let the next interaction's
// re-render catch the message up.
func (h *EstimateHandler) refreshMessage(ctx context.Context, w http.ResponseWriter, botToken, channelID, roundID string) {
	round, err := h.store.RoundByID(ctx, roundID)
	if err != nil {
		slog.Error("failed to reload round for render", "error", err, "round_id", roundID)
		middleware.Ephemeral(w, msgStaleMessage)
		return
	}

	if round.MessageTS == nil {
		// First publish never succeeded; nothing to edit yet
		slog.Warn("round has no published message to update", "round_id", roundID)
		middleware.Ephemeral(w, msgStaleMessage)
		return
	}

	if err := h.publisher.Update(ctx, botToken, channelID, *round.MessageTS, render.Round(round)); err != nil {
		slog.Error("failed to update round message", "error", err,
			"round_id", roundID, "channel_id", channelID)
		middleware.Ephemeral(w, msgStaleMessage)
		return
	}

	// Empty 200 ack: the message itself was already updated via the API
	w.WriteHeader(http.StatusOK)
}

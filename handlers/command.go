// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/middleware"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/models"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/render"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/store"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/ticket"
)

// handleCommand starts a new estimation round: resolve the team, parse an
// optional ticket reference, advance the session, publish the voting
// message, and persist its handle.
func (h *EstimateHandler) handleCommand(w http.ResponseWriter, r *http.Request, cmd models.SlashCommand) {
	ctx := r.Context()

	team, err := h.store.TeamByChannel(ctx, cmd.ChannelID)
	if errors.Is(err, store.ErrNotFound) {
		// Expected: the bot can be invoked in channels nobody set up
		middleware.Ephemeral(w, msgNotConfigured)
		return
	}
	if err != nil {
		slog.Error("team lookup failed", "error", err, "channel_id", cmd.ChannelID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return
	}

	// A command without a recognizable ticket still starts a round
	var ticketNumber, ticketTitle *string
	if number, ok := ticket.Parse(cmd.Text); ok {
		ticketNumber = &number
		if h.titles != nil {
			title, err := h.titles.IssueTitle(ctx, number)
			if err != nil {
				slog.Warn("ticket title lookup failed", "error", err, "ticket", number)
			} else if title != "" {
				ticketTitle = &title
			}
		}
	}

	sess, err := h.store.GetOrCreateSession(ctx, team.ID, cmd.ChannelID)
	if err != nil {
		slog.Error("session get-or-create failed", "error", err, "channel_id", cmd.ChannelID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return
	}

	round, err := h.store.StartNewRound(ctx, sess.ID, ticketNumber, ticketTitle)
	if err != nil {
		slog.Error("failed to start round", "error", err, "session_id", sess.ID)
		middleware.Ephemeral(w, msgStoreTrouble)
		return
	}

	ts, err := h.publisher.Post(ctx, team.BotToken, cmd.ChannelID, render.Round(round))
	if err != nil {
		// The round exists either way; the message is only its projection
		slog.Error("failed to publish round message", "error", err,
			"round_id", round.ID, "channel_id", cmd.ChannelID)
		middleware.Ephemeral(w, fmt.Sprintf("Round %d started, but the voting message could not be posted.", round.RoundNumber))
		return
	}

	if err := h.store.AttachMessageHandle(ctx, round.ID, ts); err != nil {
		slog.Error("failed to attach message handle", "error", err, "round_id", round.ID)
	}

	slog.Info("round started",
		"session_id", sess.ID,
		"round_number", round.RoundNumber,
		"ticket", cmd.Text,
	)

	middleware.Ephemeral(w, fmt.Sprintf("Round %d started.", round.RoundNumber))
}

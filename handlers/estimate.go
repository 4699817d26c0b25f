// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/auth"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/cliparse"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/jira"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/middleware"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/models"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/slackmsg"
	"github.com/justinloveless/retro-vote-sorter-board-sub001/store"
)

// maxBodySize caps the request body read. Slash command and interaction
// payloads are a few KB at most.
const maxBodySize = 1 << 20

// User-visible soft-failure messages. All of these go out with status 200
// because Slack only shows 2xx bodies to the user.
const (
	msgNotConfigured = "This channel isn't set up for estimation yet. Connect it from the team settings page first."
	msgNoActiveRound = "No active estimation round in this channel. Start one with /estimate."
	msgStoreTrouble  = "Something went wrong talking to the estimation store. Please try again."
	msgStaleMessage  = "Your action was recorded, but the round message couldn't be refreshed. It will catch up on the next interaction."
)

// EstimateHandler is the single entry point for Slack traffic: slash
// commands start rounds, block interactions vote and reveal.
type EstimateHandler struct {
	store     *store.Store
	verifier  auth.Verifier
	publisher slackmsg.Publisher
	titles    jira.TitleLookup
	cfg       cliparse.Config
}

func NewEstimateHandler(st *store.Store, verifier auth.Verifier, publisher slackmsg.Publisher, titles jira.TitleLookup, cfg cliparse.Config) *EstimateHandler {
	return &EstimateHandler{
		store:     st,
		verifier:  verifier,
		publisher: publisher,
		titles:    titles,
		cfg:       cfg,
	}
}

// HandleEstimate handles POST /slack/estimate. Request state machine:
// media type check, signature verification (fail closed), then dispatch
// on payload shape - a "payload" form field is an interaction, a
// "command" field is a slash command.
func (h *EstimateHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, "expected application/x-www-form-urlencoded")
		return
	}

	// The signature is computed over the raw body, so read it before any
	// form parsing.
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	r.Body.Close()

	if !h.verifier.Verify(body,
		r.Header.Get("X-Slack-Signature"),
		r.Header.Get("X-Slack-Request-Timestamp")) {
		slog.Warn("rejected unsigned or replayed request", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid request signature")
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "malformed form body")
		return
	}

	switch {
	case form.Get("payload") != "":
		h.handleInteraction(w, r, form.Get("payload"))
	case form.Get("command") != "":
		h.handleCommand(w, r, models.SlashCommandFromForm(form))
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "unrecognized payload shape")
	}
}

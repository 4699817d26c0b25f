// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"net/url"
	"time"
)

// Round visibility constants
const (
	VisibilityVoting   = "voting"
	VisibilityRevealed = "revealed"
)

// PointsAbstain is the sentinel stored for a participant who abstained.
const PointsAbstain = -1

// Scale is the fixed set of selectable estimation values.
var Scale = []int{1, 2, 3, 5, 8, 13, 21}

// ValidPoints reports whether p is a selectable scale value or the abstain
// sentinel.
func ValidPoints(p int) bool {
	if p == PointsAbstain {
		return true
	}
	for _, v := range Scale {
		if v == p {
			return true
		}
	}
	return false
}

// Interaction action identifiers
const (
	ActionVote    = "vote"
	ActionAbstain = "abstain"
	ActionReveal  = "reveal"
)

// Domain types

type Team struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	BotToken  string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	ChannelID    string    `json:"channel_id"`
	CurrentRound int       `json:"current_round"`
	CreatedAt    time.Time `json:"created_at"`
}

type Round struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	RoundNumber  int       `json:"round_number"`
	TicketNumber *string   `json:"ticket_number,omitempty"`
	TicketTitle  *string   `json:"ticket_title,omitempty"`
	Visibility   string    `json:"visibility"`
	MessageTS    *string   `json:"message_ts,omitempty"`
	Votes        []Vote    `json:"votes"` // sorted by display name ascending
	CreatedAt    time.Time `json:"created_at"`
}

type Vote struct {
	RoundID       string    `json:"round_id"`
	ParticipantID string    `json:"participant_id"`
	Points        int       `json:"points"`
	DisplayName   string    `json:"display_name"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Slack wire types

// SlashCommand holds the form-encoded slash command payload Slack posts to
// the estimate endpoint.
type SlashCommand struct {
	Token       string
	TeamID      string
	TeamDomain  string
	ChannelID   string
	ChannelName string
	UserID      string
	UserName    string
	Command     string
	Text        string
	ResponseURL string
	TriggerID   string
}

// SlashCommandFromForm extracts a SlashCommand from parsed form values.
func SlashCommandFromForm(form url.Values) SlashCommand {
	return SlashCommand{
		Token:       form.Get("token"),
		TeamID:      form.Get("team_id"),
		TeamDomain:  form.Get("team_domain"),
		ChannelID:   form.Get("channel_id"),
		ChannelName: form.Get("channel_name"),
		UserID:      form.Get("user_id"),
		UserName:    form.Get("user_name"),
		Command:     form.Get("command"),
		Text:        form.Get("text"),
		ResponseURL: form.Get("response_url"),
		TriggerID:   form.Get("trigger_id"),
	}
}

// Interaction is the JSON payload carried in the "payload" form field of a
// block-actions request.
type Interaction struct {
	Type        string              `json:"type"`
	Actions     []InteractionAction `json:"actions"`
	User        InteractionUser     `json:"user"`
	Channel     InteractionChannel  `json:"channel"`
	Team        InteractionTeam     `json:"team"`
	ResponseURL string              `json:"response_url"`
}

type InteractionAction struct {
	ActionID string `json:"action_id"`
	BlockID  string `json:"block_id"`
	Value    string `json:"value"`
}

type InteractionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type InteractionChannel struct {
	ID string `json:"id"`
}

type InteractionTeam struct {
	ID string `json:"id"`
}

// DisplayName returns the best human-readable name the payload carries.
func (u InteractionUser) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Name
}

// Response types

// CommandResponse is the JSON body returned to Slack for command and
// interaction acknowledgments. Ephemeral responses are shown only to the
// invoking user.
type CommandResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/models"
)

func strPtr(s string) *string { return &s }

func testRound(visibility string, votes ...models.Vote) *models.Round {
	return &models.Round{
		ID:           "round-1",
		SessionID:    "session-1",
		RoundNumber:  1,
		TicketNumber: strPtr("PROJ-123"),
		TicketTitle:  strPtr("Add login page"),
		Visibility:   visibility,
		Votes:        votes,
	}
}

func vote(name string, points int) models.Vote {
	return models.Vote{ParticipantID: "ptcp_" + name, Points: points, DisplayName: name}
}

// sectionTexts collects the mrkdwn text of every section block.
func sectionTexts(blocks []slack.Block) []string {
	var texts []string
	for _, b := range blocks {
		if s, ok := b.(*slack.SectionBlock); ok && s.Text != nil {
			texts = append(texts, s.Text.Text)
		}
	}
	return texts
}

func hasActionBlock(blocks []slack.Block) bool {
	for _, b := range blocks {
		if _, ok := b.(*slack.ActionBlock); ok {
			return true
		}
	}
	return false
}

func TestRound_Deterministic(t *testing.T) {
	r := testRound(models.VisibilityVoting, vote("Alice", 5), vote("Bob", models.PointsAbstain))

	first, err := json.Marshal(Round(r))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Round(r))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("Round() output differs between identical calls")
	}
}

func TestRound_VotingHidesPoints(t *testing.T) {
	r := testRound(models.VisibilityVoting, vote("Alice", 5), vote("Bob", 13), vote("Carol", models.PointsAbstain))
	blocks := Round(r)

	var progress string
	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "Alice") {
			progress = text
		}
	}
	if progress == "" {
		t.Fatal("voting render has no per-participant progress section")
	}

	// Presence markers only, one line per participant, never a value
	for _, want := range []string{
		":white_check_mark: Alice (voted)",
		":white_check_mark: Bob (voted)",
		":heavy_minus_sign: Carol (abstained)",
	} {
		if !strings.Contains(progress, want) {
			t.Errorf("progress section missing %q:\n%s", want, progress)
		}
	}
	for _, c := range progress {
		if c >= '0' && c <= '9' {
			t.Fatalf("voting progress leaks a numeric value:\n%s", progress)
		}
	}
}

func TestRound_VotingHasActions(t *testing.T) {
	blocks := Round(testRound(models.VisibilityVoting))

	var actions *slack.ActionBlock
	for _, b := range blocks {
		if a, ok := b.(*slack.ActionBlock); ok {
			actions = a
		}
	}
	if actions == nil {
		t.Fatal("voting render has no action block")
	}
	if actions.BlockID != BlockID {
		t.Errorf("action block id = %q, want %q", actions.BlockID, BlockID)
	}

	// Scale buttons plus abstain and reveal
	wantButtons := len(models.Scale) + 2
	if got := len(actions.Elements.ElementSet); got != wantButtons {
		t.Errorf("expected %d buttons, got %d", wantButtons, got)
	}

	ids := make(map[string]bool)
	for _, el := range actions.Elements.ElementSet {
		btn, ok := el.(*slack.ButtonBlockElement)
		if !ok {
			t.Fatalf("unexpected element type %T", el)
		}
		ids[btn.ActionID] = true
	}
	for _, want := range []string{"vote_1", "vote_21", models.ActionAbstain, models.ActionReveal} {
		if !ids[want] {
			t.Errorf("missing action id %q", want)
		}
	}
}

func TestRound_VotingEmpty(t *testing.T) {
	blocks := Round(testRound(models.VisibilityVoting))

	found := false
	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "No votes yet") {
			found = true
		}
	}
	if !found {
		t.Error("empty voting render should say no votes yet")
	}
}

func TestRound_RevealedShowsAllPoints(t *testing.T) {
	r := testRound(models.VisibilityRevealed,
		vote("Alice", 5), vote("Bob", 8), vote("Carol", models.PointsAbstain))
	blocks := Round(r)

	if hasActionBlock(blocks) {
		t.Error("revealed render must not contain action buttons")
	}

	all := strings.Join(sectionTexts(blocks), "\n")
	for _, want := range []string{
		"Alice: *5*",
		"Bob: *8*",
		"Carol: _abstained_",
	} {
		if !strings.Contains(all, want) {
			t.Errorf("revealed render missing %q:\n%s", want, all)
		}
	}
}

func TestRound_RevealedSummary(t *testing.T) {
	r := testRound(models.VisibilityRevealed,
		vote("Alice", 5), vote("Bob", 5), vote("Carol", 8),
		vote("Dave", models.PointsAbstain))
	blocks := Round(r)

	all := strings.Join(sectionTexts(blocks), "\n")
	if !strings.Contains(all, "Summary: 2 × 5, 1 × 8, 1 abstained") {
		t.Errorf("unexpected summary:\n%s", all)
	}
}

func TestRound_NoTicket(t *testing.T) {
	r := &models.Round{RoundNumber: 2, Visibility: models.VisibilityVoting, Votes: []models.Vote{}}
	blocks := Round(r)

	header, ok := blocks[0].(*slack.HeaderBlock)
	if !ok {
		t.Fatalf("first block is %T, want header", blocks[0])
	}
	if header.Text.Text != "Estimation Round 2" {
		t.Errorf("header = %q", header.Text.Text)
	}

	for _, text := range sectionTexts(blocks) {
		if strings.Contains(text, "PROJ") {
			t.Errorf("ticketless round mentions a ticket: %s", text)
		}
	}
}

func TestSummaryLine_GroupsByValue(t *testing.T) {
	tests := []struct {
		name  string
		votes []models.Vote
		want  string
	}{
		{"single value", []models.Vote{vote("A", 3)}, "Summary: 1 × 3"},
		{"scale order", []models.Vote{vote("A", 21), vote("B", 1)}, "Summary: 1 × 1, 1 × 21"},
		{"only abstentions", []models.Vote{vote("A", models.PointsAbstain)}, "Summary: 1 abstained"},
		{
			"abstentions last",
			[]models.Vote{vote("A", models.PointsAbstain), vote("B", 13), vote("C", 13)},
			"Summary: 2 × 13, 1 abstained",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summaryLine(tt.votes); got != tt.want {
				t.Errorf("summaryLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

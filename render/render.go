// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slack-go/slack"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/models"
)

// BlockID of the action row, echoed back in interaction payloads.
const BlockID = "estimate_round"

// VoteActionPrefix prefixes the per-value vote button action ids
// ("vote_5"); Slack requires action ids to be unique within a block.
const VoteActionPrefix = models.ActionVote + "_"

// Round renders the canonical message for a round. It is a pure function
// of the round value: identical input produces identical blocks, which is
// what lets the publisher replace the whole message on every change
// instead of patching it. Votes must already be sorted by display name
// (the store guarantees this).
func Round(r *models.Round) []slack.Block {
	if r.Visibility == models.VisibilityRevealed {
		return revealed(r)
	}
	return voting(r)
}

func voting(r *models.Round) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, headerText(r), false, false)),
	}
	if t := ticketLine(r); t != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, t, false, false), nil, nil))
	}

	// Progress is enumerated per participant, never summarized to a bare
	// count, and never shows a point value before reveal.
	var progress string
	if len(r.Votes) == 0 {
		progress = "_No votes yet_"
	} else {
		lines := make([]string, 0, len(r.Votes))
		for _, v := range r.Votes {
			if v.Points == models.PointsAbstain {
				lines = append(lines, ":heavy_minus_sign: "+v.DisplayName+" (abstained)")
			} else {
				lines = append(lines, ":white_check_mark: "+v.DisplayName+" (voted)")
			}
		}
		progress = strings.Join(lines, "\n")
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, progress, false, false), nil, nil))

	buttons := make([]slack.BlockElement, 0, len(models.Scale)+2)
	for _, p := range models.Scale {
		label := strconv.Itoa(p)
		buttons = append(buttons, slack.NewButtonBlockElement(
			VoteActionPrefix+label, label,
			slack.NewTextBlockObject(slack.PlainTextType, label, false, false)))
	}
	buttons = append(buttons, slack.NewButtonBlockElement(
		models.ActionAbstain, models.ActionAbstain,
		slack.NewTextBlockObject(slack.PlainTextType, "Abstain", false, false)))
	buttons = append(buttons, slack.NewButtonBlockElement(
		models.ActionReveal, models.ActionReveal,
		slack.NewTextBlockObject(slack.PlainTextType, "Reveal", false, false)))

	blocks = append(blocks, slack.NewActionBlock(BlockID, buttons...))
	return blocks
}

func revealed(r *models.Round) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, headerText(r), false, false)),
	}
	if t := ticketLine(r); t != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, t, false, false), nil, nil))
	}

	var results string
	if len(r.Votes) == 0 {
		results = "_No votes were cast_"
	} else {
		lines := make([]string, 0, len(r.Votes))
		for _, v := range r.Votes {
			if v.Points == models.PointsAbstain {
				lines = append(lines, v.DisplayName+": _abstained_")
			} else {
				lines = append(lines, fmt.Sprintf("%s: *%d*", v.DisplayName, v.Points))
			}
		}
		results = strings.Join(lines, "\n")
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, results, false, false), nil, nil))

	if len(r.Votes) > 0 {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, summaryLine(r.Votes), false, false), nil, nil))
	}
	return blocks
}

// summaryLine groups participants by identical point value, scale order
// ascending, abstentions last. Iterating the fixed scale rather than a
// map keeps the output byte-stable.
func summaryLine(votes []models.Vote) string {
	counts := make(map[int]int, len(votes))
	for _, v := range votes {
		counts[v.Points]++
	}

	parts := make([]string, 0, len(counts))
	for _, p := range models.Scale {
		if n := counts[p]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d × %d", n, p))
		}
	}
	if n := counts[models.PointsAbstain]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d abstained", n))
	}
	return "Summary: " + strings.Join(parts, ", ")
}

func headerText(r *models.Round) string {
	return fmt.Sprintf("Estimation Round %d", r.RoundNumber)
}

func ticketLine(r *models.Round) string {
	if r.TicketNumber == nil {
		return ""
	}
	if r.TicketTitle != nil && *r.TicketTitle != "" {
		return fmt.Sprintf("*%s* — %s", *r.TicketNumber, *r.TicketTitle)
	}
	return "*" + *r.TicketNumber + "*"
}

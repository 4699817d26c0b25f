// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types shared across the service.

# Domain Types

An estimation session belongs to one (team, channel) pair and owns an
ordered sequence of rounds:

  - Team: channel-to-workspace binding plus the bot token for publishing
  - Session: one per (team, channel), tracks the current round counter
  - Round: one estimation round; votes plus a voting/revealed visibility
  - Vote: one participant's current points for a round

Points come from the fixed scale {1, 2, 3, 5, 8, 13, 21}; the sentinel
PointsAbstain (-1) records an explicit abstention.

# Slack Wire Types

SlashCommand mirrors the form fields of a slash command POST. Interaction
mirrors the block_actions JSON carried in the "payload" form field.
CommandResponse is the ephemeral acknowledgment body both paths return.
*/
package models

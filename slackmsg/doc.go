// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slackmsg publishes round messages to Slack.

A round message is created once and then only edited:

	ts, err := pub.Post(ctx, team.BotToken, channelID, blocks)
	// persist ts, then on every state change:
	err = pub.Update(ctx, team.BotToken, channelID, ts, blocks)

The Publisher interface exists so tests can substitute a recording mock
(see package testutil). Calls carry a bounded timeout sized to fit inside
Slack's interaction acknowledgment budget; an expired call is a failure,
never a hang.
*/
package slackmsg

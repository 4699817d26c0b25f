// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the Slack-facing request dispatcher.

# Endpoint

One endpoint receives both of Slack's payload shapes:

	POST /slack/estimate

A form body with a "command" field is a slash command and starts a new
round. A form body with a "payload" field is a block-actions interaction
and votes, abstains, or reveals against the channel's current round.

# Request State Machine

 1. Media type must be application/x-www-form-urlencoded (else 415)
 2. Signature verification over the raw body, fail closed (else 401)
 3. Dispatch on payload shape (unrecognized shapes get 400)
 4. Command path: parse ticket, get-or-create session, start round,
    publish voting message, attach its handle
 5. Interaction path: resolve participant, find current round, apply the
    action, re-render, edit the published message in place

# Soft Failures

Unconfigured channels, missing rounds, and publish failures respond with
status 200 and an ephemeral explanation - Slack hides non-2xx bodies from
users and may retry the request. Vote and visibility writes are the source
of truth; a failed message edit is logged and healed by the next
interaction's re-render.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the chat-mediated estimation
server.

The service runs planning-poker rounds entirely through Slack messages:
a slash command opens a round, participants vote through message buttons,
and the round message is edited in place as state changes. No live
connection exists between participants; every request is a stateless
function of stored session/round/vote data.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:estimate.db SLACK_SIGNING_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file URL or PostgreSQL connection string
  - SLACK_SIGNING_SECRET (-signing-secret), or an explicit AUTH_MODE
    (permissive/strict) when running without one

Optional settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - JIRA_BASE_URL / JIRA_API_TOKEN: ticket title enrichment

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: the command/interaction dispatcher
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON and ephemeral response helpers
  - models: domain and Slack wire types
  - auth: request signature verification, participant identity
  - ticket: ticket reference parsing
  - store: session/round/vote persistence
  - render: Block Kit message rendering
  - slackmsg: message publishing (post + edit)
  - jira: optional ticket title lookup
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

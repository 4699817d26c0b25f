// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The SQL here stays inside the dialect both supported drivers share:
// CURRENT_TIMESTAMP instead of NOW(), no SERIAL, no JSONB.
const schema = `
-- Team credentials, one row per connected channel
CREATE TABLE IF NOT EXISTS team (
    id TEXT PRIMARY KEY,
    channel_id TEXT NOT NULL UNIQUE,
    bot_token TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_team_channel_id ON team(channel_id);

-- Estimation sessions
-- The (team_id, channel_id) uniqueness resolves the first-use creation race:
-- the losing inserter re-reads the winner's row.
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    team_id TEXT NOT NULL,
    channel_id TEXT NOT NULL,
    current_round INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (team_id, channel_id)
);

-- Rounds
-- round_number is assigned from session.current_round and never reused;
-- message_ts is the Slack edit handle, set once after first publish.
CREATE TABLE IF NOT EXISTS round (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    round_number INTEGER NOT NULL,
    ticket_number TEXT,
    ticket_title TEXT,
    visibility TEXT NOT NULL DEFAULT 'voting' CHECK (visibility IN ('voting', 'revealed')),
    message_ts TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (session_id, round_number)
);

CREATE INDEX IF NOT EXISTS idx_round_session_id ON round(session_id);

-- Votes, one row per (round, participant)
-- The composite primary key is what makes SetVote a per-key upsert rather
-- than a whole-map overwrite.
CREATE TABLE IF NOT EXISTS vote (
    round_id TEXT NOT NULL REFERENCES round(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL,
    points INTEGER NOT NULL,
    display_name TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (round_id, participant_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_round_id ON vote(round_id);
`

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

It is idempotent (IF NOT EXISTS) and portable across the sqlite and
postgres drivers the server supports.

# Tables

  - team: channel-to-workspace credentials, looked up by channel_id
  - session: one per (team, channel), with the monotonic round counter
  - round: estimation rounds, unique (session_id, round_number)
  - vote: one row per (round_id, participant_id)

The uniqueness constraints carry the concurrency guarantees: session
creation races resolve through the (team_id, channel_id) unique index, and
vote writes are per-participant upserts against the composite primary key.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the session/round/vote lifecycle.

# Operations

	st := store.New(db)
	sess, _ := st.GetOrCreateSession(ctx, teamID, channelID)
	round, _ := st.StartNewRound(ctx, sess.ID, ticketNumber, ticketTitle)
	_ = st.SetVote(ctx, round.ID, participantID, 5, "Alice")
	_ = st.SetVisibility(ctx, round.ID, models.VisibilityRevealed)
	_ = st.AttachMessageHandle(ctx, round.ID, ts)

# Concurrency

Every mutation is one atomic statement or one short transaction, so the
store is safe under concurrent requests without application-level locks:

  - session creation races resolve through the (team_id, channel_id)
    uniqueness constraint plus re-read
  - round numbering rides the session row lock taken by a single
    UPDATE ... RETURNING
  - votes are per-participant upserts; two participants voting at once
    touch different rows and both survive, the same participant voting
    twice keeps only the later value
  - visibility and message-handle writes are guarded updates (one-way
    transition, first-publish-wins)

The anti-pattern the schema is built against: reading the whole vote set,
mutating it in memory, and writing it back, which silently drops
concurrent votes from other participants.
*/
package store

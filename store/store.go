// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/justinloveless/retro-vote-sorter-board-sub001/models"
)

var (
	// ErrNotFound is returned for missing teams, sessions, and rounds.
	// An unconfigured channel or a session with no rounds yet is an
	// expected condition, not a failure.
	ErrNotFound = errors.New("not found")

	ErrInvalidPoints     = errors.New("points not on the estimation scale")
	ErrInvalidVisibility = errors.New("invalid visibility value")
)

// Store owns the session/round/vote lifecycle. All mutations go through
// single atomic statements or short transactions; nothing does a
// read-modify-write across calls.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// TeamByChannel looks up the team credentials owning a channel. Returns
// ErrNotFound for channels the bot was added to but never set up.
func (s *Store) TeamByChannel(ctx context.Context, channelID string) (*models.Team, error) {
	var t models.Team
	err := s.db.QueryRowContext(ctx, `
		SELECT id, channel_id, bot_token, created_at FROM team WHERE channel_id = $1
	`, channelID).Scan(&t.ID, &t.ChannelID, &t.BotToken, &t.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query team: %w", err)
	}
	return &t, nil
}

// GetOrCreateSession returns the session for a (team, channel) pair,
// creating one with a zero round counter on first use. Two concurrent
// first commands race on the insert; the (team_id, channel_id) uniqueness
// constraint makes the loser's insert a no-op and both callers read the
// same winning row.
func (s *Store) GetOrCreateSession(ctx context.Context, teamID, channelID string) (*models.Session, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, team_id, channel_id, current_round, created_at)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (team_id, channel_id) DO NOTHING
	`, uuid.NewString(), teamID, channelID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	var sess models.Session
	err = s.db.QueryRowContext(ctx, `
		SELECT id, team_id, channel_id, current_round, created_at
		FROM session WHERE team_id = $1 AND channel_id = $2
	`, teamID, channelID).Scan(&sess.ID, &sess.TeamID, &sess.ChannelID, &sess.CurrentRound, &sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &sess, nil
}

// SessionByChannel returns the existing session for a (team, channel)
// pair without creating one. The interaction path uses this: a channel
// that never ran a command has no session and therefore no active round.
func (s *Store) SessionByChannel(ctx context.Context, teamID, channelID string) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, team_id, channel_id, current_round, created_at
		FROM session WHERE team_id = $1 AND channel_id = $2
	`, teamID, channelID).Scan(&sess.ID, &sess.TeamID, &sess.ChannelID, &sess.CurrentRound, &sess.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return &sess, nil
}

// StartNewRound increments the session's round counter and inserts the
// round carrying the new number, atomically per session: the counter
// update takes the session row lock, so two concurrent commands get
// distinct numbers.
func (s *Store) StartNewRound(ctx context.Context, sessionID string, ticketNumber, ticketTitle *string) (*models.Round, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var roundNumber int
	err = tx.QueryRowContext(ctx, `
		UPDATE session SET current_round = current_round + 1
		WHERE id = $1
		RETURNING current_round
	`, sessionID).Scan(&roundNumber)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to advance round counter: %w", err)
	}

	r := models.Round{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		RoundNumber:  roundNumber,
		TicketNumber: ticketNumber,
		TicketTitle:  ticketTitle,
		Visibility:   models.VisibilityVoting,
		Votes:        []models.Vote{},
		CreatedAt:    time.Now(),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO round (id, session_id, round_number, ticket_number, ticket_title, visibility, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.SessionID, r.RoundNumber, r.TicketNumber, r.TicketTitle, r.Visibility, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}
	return &r, nil
}

// CurrentRound returns the session's round with the highest round number,
// votes included, or ErrNotFound when no round has been started.
func (s *Store) CurrentRound(ctx context.Context, sessionID string) (*models.Round, error) {
	return s.queryRound(ctx, `
		SELECT id, session_id, round_number, ticket_number, ticket_title, visibility, message_ts, created_at
		FROM round WHERE session_id = $1
		ORDER BY round_number DESC LIMIT 1
	`, sessionID)
}

// RoundByID reloads a round, votes included.
func (s *Store) RoundByID(ctx context.Context, roundID string) (*models.Round, error) {
	return s.queryRound(ctx, `
		SELECT id, session_id, round_number, ticket_number, ticket_title, visibility, message_ts, created_at
		FROM round WHERE id = $1
	`, roundID)
}

func (s *Store) queryRound(ctx context.Context, query string, arg string) (*models.Round, error) {
	var r models.Round
	var ticketNumber, ticketTitle, messageTS sql.NullString

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&r.ID, &r.SessionID, &r.RoundNumber,
		&ticketNumber, &ticketTitle, &r.Visibility, &messageTS, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query round: %w", err)
	}

	if ticketNumber.Valid {
		r.TicketNumber = &ticketNumber.String
	}
	if ticketTitle.Valid {
		r.TicketTitle = &ticketTitle.String
	}
	if messageTS.Valid {
		r.MessageTS = &messageTS.String
	}

	votes, err := s.loadVotes(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	r.Votes = votes
	return &r, nil
}

// loadVotes returns a round's votes ordered by display name (participant
// id as tiebreaker), the order the renderer shows them in.
func (s *Store) loadVotes(ctx context.Context, roundID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT round_id, participant_id, points, display_name, updated_at
		FROM vote WHERE round_id = $1
		ORDER BY display_name ASC, participant_id ASC
	`, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.RoundID, &v.ParticipantID, &v.Points, &v.DisplayName, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}
	return votes, nil
}

// SetVote merges one participant's vote into the round. The upsert is a
// single statement keyed on (round_id, participant_id): concurrent votes
// from different participants land on different rows and are all
// retained, while a repeat vote from the same participant overwrites the
// prior one. The application never reads the vote set to write it back.
func (s *Store) SetVote(ctx context.Context, roundID, participantID string, points int, displayName string) error {
	if !models.ValidPoints(points) {
		return ErrInvalidPoints
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (round_id, participant_id, points, display_name, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (round_id, participant_id) DO UPDATE SET
			points = excluded.points,
			display_name = excluded.display_name,
			updated_at = excluded.updated_at
	`, roundID, participantID, points, displayName, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

// SetVisibility transitions a round's visibility. The only real
// transition is voting -> revealed; the WHERE clause enforces one-way
// movement, so revealing twice or attempting revealed -> voting is a
// no-op rather than an error.
func (s *Store) SetVisibility(ctx context.Context, roundID, visibility string) error {
	if visibility != models.VisibilityVoting && visibility != models.VisibilityRevealed {
		return ErrInvalidVisibility
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE round SET visibility = $1
		WHERE id = $2 AND visibility = 'voting'
	`, visibility, roundID)
	if err != nil {
		return fmt.Errorf("failed to set visibility: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return s.requireRound(ctx, roundID)
	}
	return nil
}

// AttachMessageHandle records the published message handle on a round if
// and only if none is set yet. The conditional write makes first-publish
// win: a second near-simultaneous publish attempt changes nothing.
func (s *Store) AttachMessageHandle(ctx context.Context, roundID, messageTS string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE round SET message_ts = $1
		WHERE id = $2 AND message_ts IS NULL
	`, messageTS, roundID)
	if err != nil {
		return fmt.Errorf("failed to attach message handle: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return s.requireRound(ctx, roundID)
	}
	return nil
}

// requireRound distinguishes "row unchanged by design" from "row does not
// exist" after a guarded update touched nothing.
func (s *Store) requireRound(ctx context.Context, roundID string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM round WHERE id = $1)
	`, roundID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check round existence: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slackmsg

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// apiTimeout bounds every Slack API call. Slack gives slash commands and
// interactions a 3 second acknowledgment budget; the publish call has to
// finish (or fail) inside it.
const apiTimeout = 2500 * time.Millisecond

// Publisher posts and edits the round message on the chat platform.
// Publisher is an interface so handler tests can capture calls without a
// live Slack workspace.
type Publisher interface {
	// Post publishes a new message and returns its handle (the Slack
	// message timestamp) for later edits.
	Post(ctx context.Context, botToken, channelID string, blocks []slack.Block) (string, error)
	// Update replaces the content of a previously posted message.
	Update(ctx context.Context, botToken, channelID, messageTS string, blocks []slack.Block) error
}

// Client implements Publisher against the Slack Web API. Bot tokens are
// per-team rows, so the slack.Client is constructed per call; the
// underlying http.Client is shared.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: apiTimeout},
	}
}

func (c *Client) api(botToken string) *slack.Client {
	return slack.New(botToken, slack.OptionHTTPClient(c.httpClient))
}

func (c *Client) Post(ctx context.Context, botToken, channelID string, blocks []slack.Block) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	_, ts, err := c.api(botToken).PostMessageContext(ctx, channelID,
		slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return ts, nil
}

func (c *Client) Update(ctx context.Context, botToken, channelID, messageTS string, blocks []slack.Block) error {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	_, _, _, err := c.api(botToken).UpdateMessageContext(ctx, channelID, messageTS,
		slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const lookupTimeout = 2 * time.Second

// TitleLookup resolves a ticket number to a human-readable title. A nil
// lookup means enrichment is disabled; callers treat lookup errors as
// "no title" and continue.
type TitleLookup interface {
	IssueTitle(ctx context.Context, ticketNumber string) (string, error)
}

// Client fetches issue summaries from the Jira REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

func (c *Client) IssueTitle(ctx context.Context, ticketNumber string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	endpoint := c.baseURL + "/rest/api/2/issue/" + url.PathEscape(ticketNumber) + "?fields=summary"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build issue request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("issue lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("issue lookup returned status %d", resp.StatusCode)
	}

	var body struct {
		Fields struct {
			Summary string `json:"summary"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode issue response: %w", err)
	}
	return body.Fields.Summary, nil
}

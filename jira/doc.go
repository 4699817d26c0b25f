// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jira looks up ticket titles for round enrichment.

	c := jira.NewClient(cfg.JiraBaseURL, cfg.JiraToken)
	title, err := c.IssueTitle(ctx, "PROJ-123")

The lookup is best-effort decoration: the command handler logs a failure
and starts the round without a title. Deployments without Jira configured
pass a nil TitleLookup and skip it entirely.
*/
package jira

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

# Required Settings

  - DATABASE_URL (-d): sqlite file URL or postgres connection string
  - SLACK_SIGNING_SECRET (-signing-secret), or an explicit AUTH_MODE

# Authentication Mode

Request verification is an explicit deployment choice. With a signing
secret configured the mode is hmac. Without one, AUTH_MODE must be set to
permissive (always allow, dev only) or strict (always deny). A deployment
with neither fails at startup rather than silently accepting forged
requests.

# Optional Settings

  - PORT (-p): server port (default 3319)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - JIRA_BASE_URL (-jira-url), JIRA_API_TOKEN (-jira-token): enable ticket
    title enrichment on new rounds
*/
package cliparse

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides inbound request verification and participant
identity derivation.

# Request Verification

Verifier is a single-method strategy chosen at startup:

	var v auth.Verifier = auth.HMACVerifier{Secret: cfg.SigningSecret}
	ok := v.Verify(rawBody, r.Header.Get("X-Slack-Signature"),
		r.Header.Get("X-Slack-Request-Timestamp"))

HMACVerifier implements Slack's signed-secrets scheme: HMAC-SHA256 over
"v0:<timestamp>:<body>", constant-time comparison, and a 300 second replay
window. StaticVerifier is the always-allow / always-deny fallback for
deployments without a signing secret; which one runs is an explicit
configuration choice (see package cliparse).

# Participant Identity

ParticipantID maps (teamID, userID) to a stable pseudonymous id:

	id := auth.ParticipantID("T123", "U456") // "ptcp_" + 16 hex chars

The hash is non-cryptographic (FNV-1a 64); the goal is stable recognition
within a team's rounds, not secrecy of the input.
*/
package auth

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"
)

// signatureVersion is Slack's base-string version prefix.
const signatureVersion = "v0"

// replayWindow is the maximum accepted clock skew between the request
// timestamp and now. Older (or future-dated) requests are treated as
// replays and rejected.
const replayWindow = 300 * time.Second

// Verifier decides whether an inbound request genuinely came from Slack.
// The implementation is chosen once at startup from deployment config.
type Verifier interface {
	Verify(body []byte, signature, timestamp string) bool
}

// HMACVerifier recomputes the request signature from the shared signing
// secret and compares it in constant time.
type HMACVerifier struct {
	Secret string
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (v HMACVerifier) Verify(body []byte, signature, timestamp string) bool {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	age := now().Sub(time.Unix(ts, 0))
	if age > replayWindow || age < -replayWindow {
		return false
	}

	expected := ComputeSignature(v.Secret, timestamp, body)
	return hmac.Equal([]byte(signature), []byte(expected))
}

// ComputeSignature builds the expected signature for a request body:
// HMAC-SHA256 over "v0:<timestamp>:<body>", hex encoded with a "v0="
// prefix.
func ComputeSignature(secret, timestamp string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%s:%s:", signatureVersion, timestamp)
	h.Write(body)
	return signatureVersion + "=" + hex.EncodeToString(h.Sum(nil))
}

// StaticVerifier accepts or rejects every request. Allow=true is the
// permissive dev mode; Allow=false is strict deny for deployments without
// a signing secret.
type StaticVerifier struct {
	Allow bool
}

func (v StaticVerifier) Verify(body []byte, signature, timestamp string) bool {
	return v.Allow
}

// ParticipantID derives a stable pseudonymous participant id from a Slack
// user id and team id. The same pair always maps to the same id, so one
// person is recognized across a team's rounds without the vote rows
// carrying platform identity. FNV-1a is deliberate: fast, deterministic,
// and collision-resistant enough for per-team participant counts.
func ParticipantID(teamID, userID string) string {
	h := fnv.New64a()
	h.Write([]byte(teamID))
	h.Write([]byte(":"))
	h.Write([]byte(userID))
	return "ptcp_" + hex.EncodeToString(h.Sum(nil))
}

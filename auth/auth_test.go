// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestParticipantID_Deterministic(t *testing.T) {
	id1 := ParticipantID("T123", "U456")
	id2 := ParticipantID("T123", "U456")
	if id1 != id2 {
		t.Errorf("ParticipantID() not deterministic: %q vs %q", id1, id2)
	}
}

func TestParticipantID_DistinctInputs(t *testing.T) {
	base := ParticipantID("T123", "U456")

	if other := ParticipantID("T123", "U457"); other == base {
		t.Error("different user ids produced the same participant id")
	}
	if other := ParticipantID("T124", "U456"); other == base {
		t.Error("different team ids produced the same participant id")
	}
}

func TestParticipantID_Format(t *testing.T) {
	tests := []struct {
		name   string
		teamID string
		userID string
	}{
		{"standard", "T01ABC", "U99XYZ"},
		{"empty user", "T01ABC", ""},
		{"very long inputs", strings.Repeat("T", 4096), strings.Repeat("U", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ParticipantID(tt.teamID, tt.userID)
			if !strings.HasPrefix(id, "ptcp_") {
				t.Errorf("ParticipantID() = %q, want ptcp_ prefix", id)
			}
			// Must fit comfortably in a storage column regardless of input
			if len(id) >= 255 {
				t.Errorf("ParticipantID() length = %d, want < 255", len(id))
			}
			// Fixed-width hex tail
			if len(id) != len("ptcp_")+16 {
				t.Errorf("ParticipantID() length = %d, want %d", len(id), len("ptcp_")+16)
			}
		})
	}
}

func TestHMACVerifier_ValidSignature(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := HMACVerifier{Secret: "test-secret", Now: func() time.Time { return now }}

	body := []byte("command=%2Festimate&text=PROJ-123")
	ts := strconv.FormatInt(now.Unix(), 10)
	sig := ComputeSignature("test-secret", ts, body)

	if !v.Verify(body, sig, ts) {
		t.Error("Verify() rejected a valid signature")
	}
}

func TestHMACVerifier_WrongSignature(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := HMACVerifier{Secret: "test-secret", Now: func() time.Time { return now }}

	body := []byte("command=%2Festimate")
	ts := strconv.FormatInt(now.Unix(), 10)

	tests := []struct {
		name string
		sig  string
	}{
		{"empty", ""},
		{"garbage", "v0=deadbeef"},
		{"wrong secret", ComputeSignature("other-secret", ts, body)},
		{"signed different body", ComputeSignature("test-secret", ts, []byte("tampered"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v.Verify(body, tt.sig, ts) {
				t.Error("Verify() accepted an invalid signature")
			}
		})
	}
}

func TestHMACVerifier_ReplayWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := HMACVerifier{Secret: "test-secret", Now: func() time.Time { return now }}
	body := []byte("payload")

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"fresh", 0, true},
		{"4 minutes old", -4 * time.Minute, true},
		{"well past window", -10 * time.Minute, false},
		{"future dated", 10 * time.Minute, false},
		{"just inside", -299 * time.Second, true},
		{"just outside", -301 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := strconv.FormatInt(now.Add(tt.offset).Unix(), 10)
			sig := ComputeSignature("test-secret", ts, body)
			if got := v.Verify(body, sig, ts); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHMACVerifier_BadTimestamp(t *testing.T) {
	v := HMACVerifier{Secret: "test-secret"}
	if v.Verify([]byte("body"), "v0=abc", "not-a-number") {
		t.Error("Verify() accepted a non-numeric timestamp")
	}
}

func TestStaticVerifier(t *testing.T) {
	if !(StaticVerifier{Allow: true}).Verify(nil, "", "") {
		t.Error("permissive verifier should allow everything")
	}
	if (StaticVerifier{Allow: false}).Verify([]byte("body"), "v0=real-looking", "1700000000") {
		t.Error("strict verifier should deny everything")
	}
}

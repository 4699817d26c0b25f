// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ticket extracts ticket-tracker references from free-form command
text.

	number, ok := ticket.Parse("https://tracker.example.com/browse/PROJ-123")
	// "PROJ-123", true

Parsing failure is not an error: a round can run without a ticket, so
callers treat ok=false as "no reference" and move on.
*/
package ticket

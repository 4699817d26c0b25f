// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ticket

import "regexp"

// A ticket reference is uppercase letters, one hyphen, digits (PROJ-123).
var ticketPattern = regexp.MustCompile(`[A-Z]+-[0-9]+`)

// Parse extracts the first ticket reference from free-form text. The text
// may be a bare reference, a sentence containing one, or a tracker URL
// ("https://.../browse/PROJ-123"). Near-misses like "PROJ--123",
// "PROJ-123abc", or "123-123" do not count as references. Returns
// ok=false when the text carries no valid reference.
func Parse(text string) (number string, ok bool) {
	for _, loc := range ticketPattern.FindAllStringIndex(text, -1) {
		if validBoundaries(text, loc[0], loc[1]) {
			return text[loc[0]:loc[1]], true
		}
	}
	return "", false
}

// validBoundaries rejects matches glued to surrounding identifier
// characters: a letter, digit, or hyphen directly before the match (the
// doubled-hyphen and lowercase-prefix cases) or a letter or hyphen
// directly after the digits.
func validBoundaries(text string, start, end int) bool {
	if start > 0 {
		c := text[start-1]
		if isLetter(c) || isDigit(c) || c == '-' {
			return false
		}
	}
	if end < len(text) {
		c := text[end]
		if isLetter(c) || c == '-' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

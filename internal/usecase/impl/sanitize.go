// Package impl contains the implementation of the application's business logic.
package impl

import (
	"regexp"
	"strings"
)

// usernamePattern is the exact gate in front of every credential
// lookup: alphanumerics and underscore, 1 to 50 characters. Anything
// else is rejected before the store is touched.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,50}$`)

// passwordPunctuation is the punctuation half of the password
// allow-list. Together with alphanumerics it defines the exact set of
// runes that survive sanitization.
const passwordPunctuation = `!@#$%^&*()_+={}[]:;"'<>,.?/-`

// sanitizeUsername reports whether the raw username is acceptable.
// There is no normalization: usernames are matched case-sensitively and
// verbatim or not at all.
func sanitizeUsername(raw string) (string, bool) {
	if !usernamePattern.MatchString(raw) {
		return "", false
	}

	return raw, true
}

// sanitizePassword trims surrounding whitespace and silently drops
// every rune outside the allow-list. This is a lossy transform, not
// validation: a legitimate password containing a disallowed character
// (a space, a backtick, any non-ASCII rune) is altered before hashing
// and will therefore never verify. Preserved exactly as-is; both
// calling processes must filter identically or digests diverge.
func sanitizePassword(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var sanitized strings.Builder
	sanitized.Grow(len(trimmed))

	for _, r := range trimmed {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			sanitized.WriteRune(r)

			continue
		}
		if strings.ContainsRune(passwordPunctuation, r) {
			sanitized.WriteRune(r)
		}
	}

	return sanitized.String()
}

package notion

import (
	"regexp"
	"strings"
)

const (
	hexID  = `[0-9a-fA-F]{32}`
	uuidID = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`
)

// Tried in order; the first submatch of the first matching pattern is the id.
var referencePatterns = []*regexp.Regexp{
	// Bare id: 0123456789abcdef0123456789abcdef
	regexp.MustCompile(`^(` + hexID + `)$`),
	// Hyphenated UUID
	regexp.MustCompile(`^(` + uuidID + `)$`),
	// URL ending in the id, optionally followed by a view query
	regexp.MustCompile(`^https?://\S*?(` + hexID + `|` + uuidID + `)(?:\?(?:v|view)=\S*)?$`),
	// Id closing a human-readable slug: My-Characters-<id>, My-Cafe<id>.
	// The slug needs at least one non-hex character so that over-long hex
	// runs stay invalid.
	regexp.MustCompile(`^.*[^0-9a-fA-F].*?(` + hexID + `|` + uuidID + `)(?:[^0-9a-fA-F].*)?$`),
}

// ResolveReference extracts a database id from a bare id, a UUID, a share
// URL or a slugged path. Hyphens are stripped from the result.
func ResolveReference(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	for _, re := range referencePatterns {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			return strings.ReplaceAll(m[1], "-", ""), nil
		}
	}
	return "", &ReferenceFormatError{Reference: ref}
}

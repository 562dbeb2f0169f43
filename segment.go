package relay

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPattern is returned when a route pattern contains a malformed
// variable segment, such as "{}" or unbalanced braces.
var ErrInvalidPattern = errors.New("invalid route pattern")

// patternSegment is one classified element of a registered pattern.
// A literal segment matches its text byte-for-byte; a variable segment
// matches any single path segment and records it under name.
type patternSegment struct {
	text     string
	name     string
	variable bool
}

// splitPath splits a request path into its segments. The empty segment
// produced by the leading slash is dropped, so "/" yields no segments
// and the trie root itself represents it.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// parsePattern splits and classifies a registration pattern.
// Segments wrapped in "{" and "}" with a non-empty interior are variables;
// everything else is literal. Braces anywhere else are malformed.
// Request paths never go through here, so "{id}" in a request path is
// only ever a literal token.
func parsePattern(pattern string) ([]patternSegment, error) {
	raw := splitPath(pattern)
	segments := make([]patternSegment, 0, len(raw))

	for _, s := range raw {
		opening := strings.Count(s, "{")
		closing := strings.Count(s, "}")

		switch {
		case opening == 0 && closing == 0:
			segments = append(segments, patternSegment{text: s})

		case opening == 1 && closing == 1 && strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
			name := s[1 : len(s)-1]
			if name == "" {
				return nil, errors.Wrapf(ErrInvalidPattern, "empty variable name in segment %q of %q", s, pattern)
			}
			segments = append(segments, patternSegment{text: s, name: name, variable: true})

		default:
			return nil, errors.Wrapf(ErrInvalidPattern, "unbalanced braces in segment %q of %q", s, pattern)
		}
	}

	return segments, nil
}

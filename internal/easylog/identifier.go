package easylog

import (
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z_$0-9]*$`)

// ValidIdentifier reports whether s is a single identifier:
// a letter, underscore or dollar sign followed by letters, digits,
// underscores or dollar signs.
func ValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// isWordChar reports whether c belongs to the identifier-with-dots class
// scanned in cursor mode.
func isWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '$', c == '.':
		return true
	}
	return false
}

// Chain is a dotted identifier chain such as a.b.c.
// A valid chain has at least one segment and every segment is an identifier.
type Chain []string

// ParseChain splits s on dots and validates every segment.
func ParseChain(s string) (Chain, error) {
	if s == "" {
		return nil, newReject(ErrNoValidVariable, s)
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if !ValidIdentifier(seg) {
			return nil, newReject(ErrInvalidIdentifier, s)
		}
	}
	return Chain(segments), nil
}

// Len returns the number of segments.
func (c Chain) Len() int {
	return len(c)
}

// String returns the chain joined with dots.
func (c Chain) String() string {
	return strings.Join(c, ".")
}

// Prefix returns segments 0..i joined with dots.
// Indexes past the end return the whole chain.
func (c Chain) Prefix(i int) string {
	if i < 0 {
		return ""
	}
	if i >= len(c) {
		i = len(c) - 1
	}
	return strings.Join(c[:i+1], ".")
}

package services

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizePasses bounds the unescape loop for nested entity encodings.
const maxSanitizePasses = 4

// ContentPolicy turns user supplied text into plain text: markup is stripped
// and entities bluemonday escapes are restored. Unescaping never reintroduces
// markup: the result is re-sanitized until it no longer changes.
type ContentPolicy struct {
	policy *bluemonday.Policy
}

func NewContentPolicy() *ContentPolicy {
	return &ContentPolicy{policy: bluemonday.StrictPolicy()}
}

func (p *ContentPolicy) Sanitize(text string) string {
	current := text
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(p.policy.Sanitize(current))
		if next == current {
			return strings.TrimSpace(next)
		}
		current = next
	}
	// Still unstable: keep the escaped form so no markup survives.
	return strings.TrimSpace(p.policy.Sanitize(current))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

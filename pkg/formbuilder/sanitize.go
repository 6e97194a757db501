package formbuilder

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	defaultPolicy    *bluemonday.Policy
)

func (b *Builder) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(b.policy.Sanitize(trimmed))
}

// markupPolicy allows the inline elements hints and addenda commonly carry.
func markupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "b", "i", "code", "kbd", "small", "br", "abbr")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		defaultPolicy = policy
	})
	return defaultPolicy
}

package model

import (
	"sort"
	"strings"
)

// ErrorBag stores validation messages keyed by field name, in the order they
// were added.
type ErrorBag map[string][]string

// Add appends msg to field. Blank messages are ignored.
func (b *ErrorBag) Add(field, msg string) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}
	if *b == nil {
		*b = make(ErrorBag)
	}
	(*b)[field] = append((*b)[field], msg)
}

// For returns the messages recorded for field.
func (b ErrorBag) For(field string) []string {
	if len(b) == 0 {
		return nil
	}
	return b[field]
}

// Has reports whether field has at least one message.
func (b ErrorBag) Has(field string) bool {
	return len(b.For(field)) > 0
}

// Any reports whether the bag holds any message.
func (b ErrorBag) Any() bool {
	for _, msgs := range b {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// Count returns the total number of messages.
func (b ErrorBag) Count() int {
	total := 0
	for _, msgs := range b {
		total += len(msgs)
	}
	return total
}

// Fields returns the field names holding messages, sorted.
func (b ErrorBag) Fields() []string {
	out := make([]string, 0, len(b))
	for field, msgs := range b {
		if len(msgs) > 0 {
			out = append(out, field)
		}
	}
	sort.Strings(out)
	return out
}

// ErrorsFromPayload normalises a validation payload into an ErrorBag. Keys
// may be dotted paths, JSON pointers ("/title", "#/author/name") or bracket
// paths ("article[title]"); a leading segment equal to objectName is dropped.
// Nested segments are joined with dots. Messages are trimmed and de-duplicated
// per field while preserving order.
func ErrorsFromPayload(objectName string, payload map[string][]string) ErrorBag {
	if len(payload) == 0 {
		return nil
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var bag ErrorBag
	for _, raw := range keys {
		segments := parsePathSegments(raw)
		if len(segments) > 1 && objectName != "" && segments[0] == objectName {
			segments = segments[1:]
		}
		if len(segments) == 0 {
			continue
		}
		field := strings.Join(segments, ".")
		for _, msg := range normalizeMessages(payload[raw]) {
			if containsString(bag.For(field), msg) {
				continue
			}
			bag.Add(field, msg)
		}
	}
	return bag
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

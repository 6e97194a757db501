package tags

import (
	"html"
	"slices"
	"strings"
)

// Attributes holds HTML attributes keyed by name.
type Attributes map[string]string

var booleanAttributes = map[string]struct{}{
	"checked":  {},
	"disabled": {},
	"multiple": {},
	"readonly": {},
	"required": {},
	"selected": {},
}

// Clone returns a copy safe to mutate. A nil receiver yields an empty map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge returns a copy of a overlaid with other. "class" values are joined
// instead of replaced.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a.Clone()
	for key, value := range other {
		if key == "class" {
			out = out.AddClass(value)
			continue
		}
		out[key] = value
	}
	return out
}

// Without returns a copy of a with keys removed.
func (a Attributes) Without(keys ...string) Attributes {
	out := a.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// AddClass returns a copy with class tokens appended, skipping duplicates.
func (a Attributes) AddClass(classes ...string) Attributes {
	out := a.Clone()
	tokens := strings.Fields(out["class"])
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if !slices.Contains(tokens, token) {
				tokens = append(tokens, token)
			}
		}
	}
	if len(tokens) == 0 {
		delete(out, "class")
		return out
	}
	out["class"] = strings.Join(tokens, " ")
	return out
}

// Keys returns attribute names in render order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// String renders the attributes sorted by name, each prefixed with a space.
// Boolean attributes render as name="name" and are omitted when their value
// is empty or "false".
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, key := range a.Keys() {
		value := a[key]
		if _, ok := booleanAttributes[key]; ok {
			if value == "" || strings.EqualFold(value, "false") {
				continue
			}
			value = key
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(key))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
	return builder.String()
}

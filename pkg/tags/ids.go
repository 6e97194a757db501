package tags

import (
	"strings"
	"unicode"
)

// SanitizeID turns an object name such as "article[author]" into an id
// prefix ("article_author"): "][" and characters outside [-a-zA-Z0-9:.]
// become underscores, and one trailing underscore is dropped.
func SanitizeID(name string) string {
	name = strings.ReplaceAll(name, "][", "_")
	var builder strings.Builder
	builder.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '-' || r == ':' || r == '.':
			builder.WriteRune(r)
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			builder.WriteRune(r)
		default:
			builder.WriteByte('_')
		}
	}
	return strings.TrimSuffix(builder.String(), "_")
}

// FieldName returns the submitted parameter name, "object[field]", or field
// alone when object is empty.
func FieldName(object, field string) string {
	if object == "" {
		return field
	}
	return object + "[" + field + "]"
}

// FieldID returns the DOM id for field on object, "object_field".
func FieldID(object, field string) string {
	field = SanitizeID(field)
	if object == "" {
		return field
	}
	return SanitizeID(object) + "_" + field
}

// TagValueID returns the id of a radio button for value: lower-cased, with
// whitespace and non-word characters turned into underscores.
func TagValueID(object, field, value string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			builder.WriteRune(r)
			continue
		}
		builder.WriteByte('_')
	}
	return FieldID(object, field) + "_" + builder.String()
}

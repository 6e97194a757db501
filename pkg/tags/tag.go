package tags

import (
	"html"
	"strings"
)

// Escape HTML-escapes s.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Tag renders a void element such as <input> or <img>.
func Tag(name string, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteByte('<')
	builder.WriteString(name)
	builder.WriteString(attrs.String())
	builder.WriteByte('>')
	return builder.String()
}

// ContentTag renders name around content. Content is written verbatim; escape
// text before passing it in.
func ContentTag(name, content string, attrs Attributes) string {
	var builder strings.Builder
	builder.Grow(len(name)*2 + len(content) + 16)
	builder.WriteByte('<')
	builder.WriteString(name)
	builder.WriteString(attrs.String())
	builder.WriteByte('>')
	builder.WriteString(content)
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteByte('>')
	return builder.String()
}

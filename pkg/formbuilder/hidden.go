package formbuilder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formkit/pkg/tags"
)

// AuthenticityTokenField is the param name used by AuthenticityToken.
const AuthenticityTokenField = "authenticity_token"

// HiddenField is a hidden input emitted at the top of a form, after the
// method override.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// AuthenticityToken carries a request forgery token under
// authenticity_token.
func AuthenticityToken(token string) HiddenField {
	return Hidden(AuthenticityTokenField, token)
}

// CSRFToken carries a request forgery token under a caller chosen name,
// e.g. "_csrf" or "csrf_token".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField carries a record version for optimistic locking.
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// hiddenInputs renders fields sorted by name. Blank names are dropped and
// later fields win on collisions.
func hiddenInputs(fields []HiddenField) string {
	if len(fields) == 0 {
		return ""
	}
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		values[name] = field.Value
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		out.WriteString(tags.Tag("input", tags.Attributes{
			"name":  name,
			"type":  "hidden",
			"value": values[name],
		}))
	}
	return out.String()
}

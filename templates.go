package formkit

import (
	"io/fs"

	"github.com/goliatone/go-formkit/pkg/tags"
)

// EmbeddedTemplates exposes the built-in control templates so callers can
// reuse or extend them without importing the tags package directly.
func EmbeddedTemplates() fs.FS {
	return tags.TemplatesFS()
}

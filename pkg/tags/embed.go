package tags

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	inputTemplate    = "templates/input"
	textAreaTemplate = "templates/textarea"
	selectTemplate   = "templates/select"
)

// TemplatesFS exposes the embedded control templates so hosts can copy and
// override them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

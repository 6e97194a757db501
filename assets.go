package formkit

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetName is the file name of the default stylesheet inside
// StylesheetFS.
const StylesheetName = "formkit.css"

// StylesheetFS exposes the default styles for the generated classes.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formkit.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

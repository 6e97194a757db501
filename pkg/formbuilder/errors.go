package formbuilder

import "errors"

var (
	// ErrUnsupportedFieldKind reports a field kind outside the fixed set.
	ErrUnsupportedFieldKind = errors.New("formbuilder: unsupported field kind")
	// ErrUnsupportedPurpose reports a button purpose outside new, save,
	// cancel, edit and delete.
	ErrUnsupportedPurpose = errors.New("formbuilder: unsupported purpose")
)

// Must returns html or panics with err. Use it where a render failure is a
// wiring bug, e.g. in templates built at startup.
func Must(html string, err error) string {
	if err != nil {
		panic(err)
	}
	return html
}

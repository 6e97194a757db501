package model

// BoundObject is the record being rendered into a form.
type BoundObject interface {
	// ObjectName is the param key used for control names and ids, e.g.
	// "article" yields article[title] and article_title.
	ObjectName() string
	// Value returns the current value for field.
	Value(field string) (any, bool)
	// Errors returns the validation messages recorded for field, in order.
	Errors(field string) []string
}

// PresenceReflector is implemented by bound objects that know which fields
// must be present. Builders use it to infer required markers.
type PresenceReflector interface {
	RequiresPresence(field string) bool
}

// DisplayNamer is implemented by bound objects that declare a human label
// for some of their fields.
type DisplayNamer interface {
	DisplayName(field string) (string, bool)
}

// ErrorsFor returns the messages for field, tolerating a nil object.
func ErrorsFor(obj BoundObject, field string) []string {
	if obj == nil {
		return nil
	}
	return obj.Errors(field)
}

// ValueFor returns the value for field, tolerating a nil object.
func ValueFor(obj BoundObject, field string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	return obj.Value(field)
}

// RequiresPresence reports whether obj declares field as mandatory. The
// second result is false when obj carries no presence metadata at all.
func RequiresPresence(obj BoundObject, field string) (required bool, known bool) {
	if obj == nil {
		return false, false
	}
	reflector, ok := obj.(PresenceReflector)
	if !ok {
		return false, false
	}
	return reflector.RequiresPresence(field), true
}

// DisplayName resolves the label for field: the object's declared name when
// available, otherwise the humanized field name.
func DisplayName(obj BoundObject, field string) string {
	if obj != nil {
		if namer, ok := obj.(DisplayNamer); ok {
			if name, ok := namer.DisplayName(field); ok && name != "" {
				return name
			}
		}
	}
	return Humanize(field)
}

package tags

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupportedControl reports a control kind with no registered renderer.
var ErrUnsupportedControl = errors.New("tags: unsupported control")

// Kind identifies a native control.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindPassword Kind = "password"
	KindFile     Kind = "file"
	KindHidden   Kind = "hidden"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindSelect   Kind = "select"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
	KindCountry  Kind = "country"
)

// Choice is one option of a select control.
type Choice struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Choices builds choices whose labels equal their values.
func Choices(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, value := range values {
		out = append(out, Choice{Label: value, Value: value})
	}
	return out
}

// ControlOptions are helper settings that never become attributes.
type ControlOptions struct {
	IncludeBlank   bool
	Prompt         string
	CheckedValue   string
	UncheckedValue string
	StartYear      int
	EndYear        int
	Priority       []string
}

// Request describes one control to render.
type Request struct {
	Kind    Kind
	Object  string
	Field   string
	Value   any
	Attrs   Attributes
	Choices []Choice
	// TagValue is the submitted value of a radio button.
	TagValue string
	Options  ControlOptions
}

// ID returns the DOM id the control will carry, honouring an explicit id
// attribute.
func (r Request) ID() string {
	if id := strings.TrimSpace(r.Attrs["id"]); id != "" {
		return id
	}
	switch r.Kind {
	case KindRadio:
		return TagValueID(r.Object, r.Field, r.TagValue)
	case KindDate, KindDateTime:
		return FieldID(r.Object, r.Field) + "_1i"
	}
	return FieldID(r.Object, r.Field)
}

// Name returns the submitted parameter name, honouring an explicit name
// attribute.
func (r Request) Name() string {
	if name := strings.TrimSpace(r.Attrs["name"]); name != "" {
		return name
	}
	return FieldName(r.Object, r.Field)
}

// StringValue formats Value for use in attributes and option matching.
func (r Request) StringValue() string {
	return FormatValue(r.Value)
}

// FormatValue stringifies a bound value; nil becomes "".
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

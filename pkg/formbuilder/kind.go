package formbuilder

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/tags"
)

// FieldKind names a decorated field helper.
type FieldKind string

const (
	TextField      FieldKind = "text_field"
	TextArea       FieldKind = "text_area"
	PasswordField  FieldKind = "password_field"
	FileField      FieldKind = "file_field"
	DateSelect     FieldKind = "date_select"
	DateTimeSelect FieldKind = "datetime_select"
	CountrySelect  FieldKind = "country_select"
	Select         FieldKind = "select"
	CheckBox       FieldKind = "check_box"
	RadioButton    FieldKind = "radio_button"
	ReadOnly       FieldKind = "read_only"
)

type layout int

const (
	// long: label, control, addendum, hint.
	layoutLong layout = iota
	// short: control, label, hint.
	layoutShort
)

type kindDescriptor struct {
	control tags.Kind
	class   string
	layout  layout
}

var kindTable = map[FieldKind]kindDescriptor{
	TextField:      {control: tags.KindText, class: "text"},
	TextArea:       {control: tags.KindTextArea, class: "textarea"},
	PasswordField:  {control: tags.KindPassword, class: "password"},
	FileField:      {control: tags.KindFile, class: "file"},
	DateSelect:     {control: tags.KindDate, class: "date"},
	DateTimeSelect: {control: tags.KindDateTime, class: "datetime"},
	CountrySelect:  {control: tags.KindCountry, class: "select"},
	Select:         {control: tags.KindSelect, class: "select"},
	CheckBox:       {control: tags.KindCheckbox, class: "checkbox", layout: layoutShort},
	RadioButton:    {control: tags.KindRadio, class: "radio", layout: layoutShort},
	ReadOnly:       {control: tags.KindHidden, class: "readonly"},
}

var kindOrder = []FieldKind{
	TextField, TextArea, PasswordField, FileField, DateSelect, DateTimeSelect,
	CountrySelect, Select, CheckBox, RadioButton, ReadOnly,
}

var kindAliases = map[string]FieldKind{
	"text":      TextField,
	"textarea":  TextArea,
	"password":  PasswordField,
	"file":      FileField,
	"date":      DateSelect,
	"datetime":  DateTimeSelect,
	"country":   CountrySelect,
	"checkbox":  CheckBox,
	"radio":     RadioButton,
	"readonly":  ReadOnly,
	"hidden":    ReadOnly,
	"read_only": ReadOnly,
}

// Kinds returns every supported field kind.
func Kinds() []FieldKind {
	return append([]FieldKind(nil), kindOrder...)
}

// ParseFieldKind resolves a helper name ("text_field", "check_box") or a
// short alias ("text", "checkbox").
func ParseFieldKind(name string) (FieldKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if _, ok := kindTable[FieldKind(normalized)]; ok {
		return FieldKind(normalized), nil
	}
	if kind, ok := kindAliases[normalized]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFieldKind, name)
}

// Valid reports whether k is a supported kind.
func (k FieldKind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Class is the wrapper class tag for k.
func (k FieldKind) Class() string {
	return kindTable[k].class
}

// Short reports whether k places its label after the control.
func (k FieldKind) Short() bool {
	return kindTable[k].layout == layoutShort
}

func (k FieldKind) descriptor() (kindDescriptor, error) {
	descriptor, ok := kindTable[k]
	if !ok {
		return kindDescriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedFieldKind, string(k))
	}
	return descriptor, nil
}

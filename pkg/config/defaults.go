// Package config holds the process-wide rendering defaults and the per-form
// overrides derived from them. Values are plain structs: set them once at
// startup and hand copies to builders.
package config

// Defaults captures the settings shared by every form rendered with a builder.
type Defaults struct {
	// RequiredSignifier is the text wrapped in <em class="required"> when a
	// field is marked as mandatory without a custom marker.
	RequiredSignifier string `json:"requiredSignifier" yaml:"requiredSignifier"`
	// LabelSuffix is appended to every generated label text.
	LabelSuffix string `json:"labelSuffix" yaml:"labelSuffix"`
	// CapitalizeErrors upper-cases the first letter of inline error sentences.
	CapitalizeErrors bool `json:"capitalizeErrors" yaml:"capitalizeErrors"`
	// IconPath is a fmt pattern receiving the icon name, used for button and
	// link legends when no theme asset resolver is configured.
	IconPath string `json:"iconPath" yaml:"iconPath"`
}

const (
	DefaultRequiredSignifier = "(required)"
	DefaultLabelSuffix       = ":"
	DefaultIconPath          = "/images/icons/%s.png"
)

// Default returns the built-in defaults.
func Default() Defaults {
	return Defaults{
		RequiredSignifier: DefaultRequiredSignifier,
		LabelSuffix:       DefaultLabelSuffix,
		CapitalizeErrors:  true,
		IconPath:          DefaultIconPath,
	}
}

// Overrides describes a partial configuration. Nil fields inherit from the
// parent Defaults.
type Overrides struct {
	RequiredSignifier *string `json:"requiredSignifier,omitempty" yaml:"requiredSignifier,omitempty"`
	LabelSuffix       *string `json:"labelSuffix,omitempty" yaml:"labelSuffix,omitempty"`
	CapitalizeErrors  *bool   `json:"capitalizeErrors,omitempty" yaml:"capitalizeErrors,omitempty"`
	IconPath          *string `json:"iconPath,omitempty" yaml:"iconPath,omitempty"`
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return o.RequiredSignifier == nil && o.LabelSuffix == nil && o.CapitalizeErrors == nil && o.IconPath == nil
}

// Derive returns a child configuration with the supplied overrides applied.
// The receiver is left untouched.
func (d Defaults) Derive(o Overrides) Defaults {
	out := d
	if o.RequiredSignifier != nil {
		out.RequiredSignifier = *o.RequiredSignifier
	}
	if o.LabelSuffix != nil {
		out.LabelSuffix = *o.LabelSuffix
	}
	if o.CapitalizeErrors != nil {
		out.CapitalizeErrors = *o.CapitalizeErrors
	}
	if o.IconPath != nil {
		out.IconPath = *o.IconPath
	}
	return out
}

// Merge layers next on top of o, returning the combined overrides.
func (o Overrides) Merge(next Overrides) Overrides {
	out := o
	if next.RequiredSignifier != nil {
		out.RequiredSignifier = next.RequiredSignifier
	}
	if next.LabelSuffix != nil {
		out.LabelSuffix = next.LabelSuffix
	}
	if next.CapitalizeErrors != nil {
		out.CapitalizeErrors = next.CapitalizeErrors
	}
	if next.IconPath != nil {
		out.IconPath = next.IconPath
	}
	return out
}

// String returns a pointer to value, for building Overrides literals.
func String(value string) *string { return &value }

// Bool returns a pointer to value, for building Overrides literals.
func Bool(value bool) *bool { return &value }

package formbuilder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formkit/pkg/tags"
)

// Option keys consumed by the decorator. They never reach the control.
const (
	OptionLabel      = "label"
	OptionSuffix     = "suffix"
	OptionRequired   = "required"
	OptionHint       = "hint"
	OptionAddendum   = "addendum"
	OptionCapitalize = "capitalize"
)

// Option keys consumed by the control helper. They never become attributes.
const (
	OptionIncludeBlank   = "include_blank"
	OptionPrompt         = "prompt"
	OptionCheckedValue   = "checked_value"
	OptionUncheckedValue = "unchecked_value"
	OptionStartYear      = "start_year"
	OptionEndYear        = "end_year"
	OptionPriority       = "priority"
	OptionChoices        = "choices"
	OptionTagValue       = "tag_value"
)

var decoratorKeys = []string{
	OptionLabel, OptionSuffix, OptionRequired, OptionHint, OptionAddendum, OptionCapitalize,
}

// Requirement is an explicit required override for one field.
type Requirement struct {
	On   bool
	Text string
}

// RequiredOn marks the field as required using the configured signifier.
func RequiredOn() *Requirement { return &Requirement{On: true} }

// RequiredOff suppresses the marker even when the object declares presence.
func RequiredOff() *Requirement { return &Requirement{} }

// RequiredText marks the field as required with a custom marker.
func RequiredText(text string) *Requirement { return &Requirement{On: true, Text: text} }

// LabelText returns a label override.
func LabelText(text string) *string { return &text }

// Suffix returns a suffix override.
func Suffix(text string) *string { return &text }

// Capitalize returns a capitalisation override.
func Capitalize(on bool) *bool { return &on }

// FieldOptions controls the decoration of one field. Zero values fall back
// to the builder's configuration.
type FieldOptions struct {
	// Label overrides the display name. Ignored when NoLabel is set.
	Label *string
	// NoLabel suppresses the label element entirely.
	NoLabel  bool
	Suffix   *string
	Required *Requirement
	Hint     string
	Addendum string
	// Capitalize overrides the capitalisation of the error sentence.
	Capitalize *bool

	// Input holds attributes forwarded to the control.
	Input tags.Attributes
	// LabelAttrs holds attributes for the <label> element.
	LabelAttrs tags.Attributes
	// Control holds settings consumed by the control helper.
	Control tags.ControlOptions
	// Choices feeds select fields.
	Choices []tags.Choice
	// TagValue is the submitted value of a radio button.
	TagValue string
}

// ParseOptions converts a loosely typed option map, as decoded from JSON or
// a query string, into FieldOptions. Recognised keys are consumed; an
// explicit nil or false label suppresses the label; every other key becomes
// a control attribute.
func ParseOptions(raw map[string]any) (FieldOptions, error) {
	var opts FieldOptions
	for key, value := range raw {
		var err error
		switch key {
		case OptionLabel:
			switch v := value.(type) {
			case nil:
				opts.NoLabel = true
			case bool:
				opts.NoLabel = !v
			default:
				opts.Label = LabelText(fmt.Sprint(v))
			}
		case OptionSuffix:
			if value == nil {
				opts.Suffix = Suffix("")
				continue
			}
			opts.Suffix = Suffix(fmt.Sprint(value))
		case OptionRequired:
			switch v := value.(type) {
			case nil:
			case bool:
				if v {
					opts.Required = RequiredOn()
				} else {
					opts.Required = RequiredOff()
				}
			case string:
				opts.Required = parseRequired(v)
			default:
				err = fmt.Errorf("expected bool or string, got %T", value)
			}
		case OptionHint:
			opts.Hint = stringOption(value)
		case OptionAddendum:
			opts.Addendum = stringOption(value)
		case OptionCapitalize:
			var on bool
			if on, err = boolOption(value); err == nil {
				opts.Capitalize = Capitalize(on)
			}
		case OptionIncludeBlank:
			opts.Control.IncludeBlank, err = boolOption(value)
		case OptionPrompt:
			opts.Control.Prompt = stringOption(value)
		case OptionCheckedValue:
			opts.Control.CheckedValue = stringOption(value)
		case OptionUncheckedValue:
			opts.Control.UncheckedValue = stringOption(value)
		case OptionStartYear:
			opts.Control.StartYear, err = intOption(value)
		case OptionEndYear:
			opts.Control.EndYear, err = intOption(value)
		case OptionPriority:
			opts.Control.Priority, err = stringsOption(value)
		case OptionChoices:
			var values []string
			if values, err = stringsOption(value); err == nil {
				opts.Choices = tags.Choices(values...)
			}
		case OptionTagValue:
			opts.TagValue = stringOption(value)
		default:
			if opts.Input == nil {
				opts.Input = tags.Attributes{}
			}
			if attr, ok := attributeValue(key, value); ok {
				opts.Input[key] = attr
			}
		}
		if err != nil {
			return FieldOptions{}, fmt.Errorf("formbuilder: option %q: %w", key, err)
		}
	}
	return opts, nil
}

func parseRequired(value string) *Requirement {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return RequiredOn()
	case "false", "":
		return RequiredOff()
	}
	return RequiredText(value)
}

func stringOption(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func boolOption(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("expected bool, got %q", v)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("expected bool, got %T", value)
}

func intOption(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("expected integer, got %T", value)
}

func stringsOption(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out, nil
	case string:
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected list of strings, got %T", value)
}

func attributeValue(key string, value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return key, true
	}
	return fmt.Sprint(value), true
}

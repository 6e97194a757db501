package tags

import (
	"strconv"
	"strings"
)

const (
	defaultCheckedValue   = "1"
	defaultUncheckedValue = "0"
	countrySeparator      = "-------------"
)

func baseAttributes(req Request, inputType string) Attributes {
	attrs := Attributes{
		"id":   req.ID(),
		"name": req.Name(),
	}
	if inputType != "" {
		attrs["type"] = inputType
	}
	return attrs
}

func renderTextInput(inputType string) Renderer {
	return func(h *Helper, req Request) (string, error) {
		attrs := baseAttributes(req, inputType)
		if value := req.StringValue(); value != "" {
			attrs["value"] = value
		}
		return h.Input(attrs.Merge(req.Attrs))
	}
}

func renderPassword(h *Helper, req Request) (string, error) {
	return h.Input(baseAttributes(req, "password").Merge(req.Attrs))
}

func renderFile(h *Helper, req Request) (string, error) {
	return h.Input(baseAttributes(req, "file").Merge(req.Attrs))
}

func renderTextArea(h *Helper, req Request) (string, error) {
	attrs := baseAttributes(req, "").Merge(req.Attrs)
	return h.TextArea(req.StringValue(), attrs)
}

func renderCheckbox(h *Helper, req Request) (string, error) {
	checkedValue := firstNonEmpty(req.Options.CheckedValue, defaultCheckedValue)
	uncheckedValue := firstNonEmpty(req.Options.UncheckedValue, defaultUncheckedValue)

	hidden, err := h.Input(Attributes{
		"name":  req.Name(),
		"type":  "hidden",
		"value": uncheckedValue,
	})
	if err != nil {
		return "", err
	}

	attrs := baseAttributes(req, "checkbox")
	attrs["value"] = checkedValue
	if isChecked(req.Value, checkedValue) {
		attrs["checked"] = "checked"
	}
	box, err := h.Input(attrs.Merge(req.Attrs))
	if err != nil {
		return "", err
	}
	return hidden + box, nil
}

func renderRadio(h *Helper, req Request) (string, error) {
	attrs := baseAttributes(req, "radio")
	attrs["value"] = req.TagValue
	if req.StringValue() == req.TagValue {
		attrs["checked"] = "checked"
	}
	return h.Input(attrs.Merge(req.Attrs))
}

func renderSelect(h *Helper, req Request) (string, error) {
	value := req.StringValue()
	choices := leadingChoices(req.Options, value)
	choices = append(choices, req.Choices...)
	return h.SelectTag(choices, value, baseAttributes(req, "").Merge(req.Attrs))
}

func renderCountrySelect(h *Helper, req Request) (string, error) {
	list, err := h.Countries()
	if err != nil {
		return "", err
	}

	value := req.StringValue()
	choices := leadingChoices(req.Options, value)
	if len(req.Options.Priority) > 0 {
		choices = append(choices, Choices(req.Options.Priority...)...)
		choices = append(choices, Choice{Label: countrySeparator, Disabled: true})
	}
	for _, country := range list {
		choices = append(choices, Choice{Label: country.Name, Value: country.Name})
	}
	return h.SelectTag(choices, value, baseAttributes(req, "").Merge(req.Attrs))
}

func leadingChoices(opts ControlOptions, value string) []Choice {
	var choices []Choice
	if opts.Prompt != "" && value == "" {
		choices = append(choices, Choice{Label: opts.Prompt})
	}
	if opts.IncludeBlank {
		choices = append(choices, Choice{})
	}
	return choices
}

func isChecked(value any, checkedValue string) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case *bool:
		return v != nil && *v
	case int:
		return v != 0
	}
	formatted := strings.TrimSpace(FormatValue(value))
	if formatted == checkedValue {
		return true
	}
	parsed, err := strconv.ParseBool(formatted)
	return err == nil && parsed
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

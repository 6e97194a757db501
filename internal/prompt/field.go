package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/formbuilder"
	"github.com/goliatone/go-formkit/pkg/model"
)

// FieldAnswers is the outcome of AskField, ready for Builder.RenderField.
type FieldAnswers struct {
	Kind    string
	Options map[string]any
}

// AskField walks the user through the decoration options of field. Values
// already present in seed are offered as defaults and kept as seeded when the
// answer is left at its default, so a custom required signifier or a
// suppressed (nil) label survive.
func AskField(ctx context.Context, driver Driver, field string, seed map[string]any) (FieldAnswers, error) {
	if driver == nil {
		return FieldAnswers{}, fmt.Errorf("prompt: driver is nil")
	}

	options := make(map[string]any, len(seed)+4)
	for key, value := range seed {
		options[key] = value
	}

	kinds := formbuilder.Kinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:  fmt.Sprintf("Field kind for %q", field),
		Options:  names,
		PageSize: len(names),
	})
	if err != nil {
		return FieldAnswers{}, err
	}
	if idx < 0 || idx >= len(names) {
		return FieldAnswers{}, fmt.Errorf("%w: selection %d", formbuilder.ErrUnsupportedFieldKind, idx)
	}

	labelDefault := seedString(seed, formbuilder.OptionLabel, model.Humanize(field))
	label, err := driver.Input(ctx, InputConfig{
		Message: "Label",
		Default: labelDefault,
		Help:    "Leave as is to use the humanized field name.",
	})
	if err != nil {
		return FieldAnswers{}, err
	}
	label = strings.TrimSpace(label)
	_, seededLabel := seed[formbuilder.OptionLabel]
	if label != "" && !(seededLabel && label == labelDefault) {
		options[formbuilder.OptionLabel] = label
	}

	requiredDefault := seedBool(seed, formbuilder.OptionRequired)
	required, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Required?",
		Default: requiredDefault,
	})
	if err != nil {
		return FieldAnswers{}, err
	}
	if _, seeded := seed[formbuilder.OptionRequired]; !seeded || required != requiredDefault {
		options[formbuilder.OptionRequired] = required
	}

	for _, key := range []string{formbuilder.OptionHint, formbuilder.OptionAddendum} {
		answer, err := driver.Input(ctx, InputConfig{
			Message: model.Humanize(key),
			Default: seedString(seed, key, ""),
		})
		if err != nil {
			return FieldAnswers{}, err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			options[key] = answer
		}
	}

	return FieldAnswers{Kind: names[idx], Options: options}, nil
}

func seedString(seed map[string]any, key, fallback string) string {
	if value, ok := seed[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

func seedBool(seed map[string]any, key string) bool {
	switch v := seed[key].(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	}
	return false
}

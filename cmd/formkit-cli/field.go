package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formkit/internal/prompt"
	"github.com/goliatone/go-formkit/pkg/formbuilder"
	"github.com/goliatone/go-formkit/pkg/model"
)

type fieldFlags struct {
	kind        string
	object      string
	value       string
	options     string
	errors      string
	require     bool
	interactive bool
}

func newFieldCmd() *cobra.Command {
	flags := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "field FIELD",
		Short: "Render one decorated field",
		Example: `  formkit-cli field title --require --errors '{"title":["can not be blank"]}'
  formkit-cli field published --kind check_box --value 1
  formkit-cli field body --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runField(cmd, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.kind, "kind", "k", string(formbuilder.TextField), "Field kind (see the kinds command)")
	cmd.Flags().StringVarP(&flags.object, "object", "o", "record", "Object name used for ids and param keys")
	cmd.Flags().StringVar(&flags.value, "value", "", "Current value of the field")
	cmd.Flags().StringVar(&flags.options, "options", "", "Field options as a JSON object")
	cmd.Flags().StringVar(&flags.errors, "errors", "", "Validation errors as a JSON object of field to messages")
	cmd.Flags().BoolVar(&flags.require, "require", false, "Declare the field as requiring presence on the object")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Prompt for kind and decoration options")
	return cmd
}

func runField(cmd *cobra.Command, flags *fieldFlags, field string) error {
	field = strings.TrimSpace(field)
	if field == "" {
		return fmt.Errorf("field name is required")
	}

	raw, err := decodeObject("options", flags.options)
	if err != nil {
		return err
	}

	record := model.NewRecord(flags.object)
	if cmd.Flags().Changed("value") {
		record.Set(field, flags.value)
	}
	if flags.require {
		record.Require(field)
	}
	if strings.TrimSpace(flags.errors) != "" {
		var payload map[string][]string
		if err := json.Unmarshal([]byte(flags.errors), &payload); err != nil {
			return fmt.Errorf("invalid --errors: %w", err)
		}
		record.WithErrors(model.ErrorsFromPayload(flags.object, payload))
	}

	kind := flags.kind
	if flags.interactive {
		answers, err := prompt.AskField(cmd.Context(), newPromptDriver(), field, raw)
		if err != nil {
			return err
		}
		kind, raw = answers.Kind, answers.Options
	}

	builder, err := newBuilder(record)
	if err != nil {
		return err
	}
	html, err := builder.RenderField(kind, field, raw)
	if err != nil {
		return err
	}
	logger.Debug("rendered field", zap.String("kind", kind), zap.String("field", field))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}

func decodeObject(flag, value string) (map[string]any, error) {
	if strings.TrimSpace(value) == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

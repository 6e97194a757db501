package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formkit/pkg/formbuilder"
)

type buttonFlags struct {
	label  string
	icon   string
	noIcon bool
	url    string
	link   bool
	attrs  string
}

func newButtonCmd() *cobra.Command {
	flags := &buttonFlags{}
	cmd := &cobra.Command{
		Use:   "button PURPOSE",
		Short: "Render a purpose button or link (new, save, cancel, edit, delete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runButton(cmd, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.label, "label", "", "Replace the capitalised purpose name")
	cmd.Flags().StringVar(&flags.icon, "icon", "", "Replace the purpose icon name")
	cmd.Flags().BoolVar(&flags.noIcon, "no-icon", false, "Render the legend without an icon")
	cmd.Flags().StringVar(&flags.url, "url", "", "Link target")
	cmd.Flags().BoolVar(&flags.link, "link", false, "Always render a link, even for submit purposes")
	cmd.Flags().StringVar(&flags.attrs, "attrs", "", "Extra attributes as a JSON object")
	return cmd
}

func runButton(cmd *cobra.Command, flags *buttonFlags, name string) error {
	purpose, err := formbuilder.ParsePurpose(name)
	if err != nil {
		return err
	}

	raw, err := decodeObject("attrs", flags.attrs)
	if err != nil {
		return err
	}
	opts, err := formbuilder.ParseButtonOptions(raw)
	if err != nil {
		return err
	}
	if flags.label != "" {
		opts.Label = flags.label
	}
	if flags.icon != "" {
		opts.Icon = flags.icon
	}
	if flags.url != "" {
		opts.URL = flags.url
	}
	opts.NoIcon = opts.NoIcon || flags.noIcon

	builder, err := newBuilder(nil)
	if err != nil {
		return err
	}

	var html string
	if flags.link {
		html, err = builder.LinkToForm(purpose, opts)
	} else {
		html, err = builder.Button(purpose, opts)
	}
	if err != nil {
		return err
	}
	logger.Debug("rendered button", zap.String("purpose", string(purpose)), zap.Bool("link", flags.link))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/formbuilder"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List field kinds and button purposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, kind := range formbuilder.Kinds() {
				layout := "long"
				if kind.Short() {
					layout = "short"
				}
				if _, err := fmt.Fprintf(out, "field\t%s\t%s\t%s\n", kind, kind.Class(), layout); err != nil {
					return err
				}
			}
			for _, purpose := range formbuilder.Purposes() {
				if _, err := fmt.Fprintf(out, "button\t%s\n", purpose); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

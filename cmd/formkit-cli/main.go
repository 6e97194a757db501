// Command formkit-cli renders decorated form fields and purpose buttons from
// the command line, for previewing markup and checking configuration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formkit/internal/prompt"
	"github.com/goliatone/go-formkit/pkg/config"
	"github.com/goliatone/go-formkit/pkg/formbuilder"
	"github.com/goliatone/go-formkit/pkg/model"
)

var (
	// Global flags
	verbose    bool
	configPath string
	envPath    string

	// Logger
	logger *zap.Logger

	newPromptDriver = func() prompt.Driver { return prompt.NewSurveyDriver() }
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formkit-cli",
		Short: "Render decorated form fields and purpose buttons",
		Long: `formkit-cli renders the markup produced by the formkit builder.

Configuration is read from --config (JSON or YAML), then --env (a .env file),
then FORMKIT_* variables in the process environment.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML defaults file")
	root.PersistentFlags().StringVar(&envPath, "env", "", "Path to a .env file with FORMKIT_* overrides")

	root.AddCommand(newFieldCmd(), newButtonCmd(), newKindsCmd())
	return root
}

func newBuilder(object model.BoundObject) (*formbuilder.Builder, error) {
	defaults, err := config.Resolve(config.Sources{
		File:   configPath,
		DotEnv: envPath,
		Lookup: os.LookupEnv,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved defaults",
		zap.String("required_signifier", defaults.RequiredSignifier),
		zap.String("label_suffix", defaults.LabelSuffix),
		zap.Bool("capitalize_errors", defaults.CapitalizeErrors),
		zap.String("icon_path", defaults.IconPath),
	)
	return formbuilder.New(object,
		formbuilder.WithDefaults(defaults),
		formbuilder.WithLogger(logger),
	)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

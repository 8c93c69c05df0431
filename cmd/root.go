// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/observability"
)

type contextKey string

const configKey contextKey = "config"

var (
	cfgFile string
	// osExit is swapped out in tests.
	osExit = os.Exit
)

// newRootCmd builds the command tree. Subcommands receive the validated
// configuration through the command context.
func newRootCmd(provider storeProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "horned-owl-serializer",
		Short: "Turns OWL ontologies into VOWL graphs.",
		Long: `horned-owl-serializer reads OWL 2 ontologies in Functional-Style or OWL/XML
syntax and extracts the node and edge graph used by VOWL renderers.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(v); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "horned-owl-serializer"})
				return fmt.Errorf("failed to load or validate config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Starting horned-owl-serializer", zap.String("version", Version))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, configKey, config.Interface(cfg)))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./horned-owl-serializer.yaml, then $HOME)")
	rootCmd.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)

	rootCmd.AddCommand(newExtractCmd(provider))
	rootCmd.AddCommand(newEntitiesCmd())
	rootCmd.AddCommand(newNeighborsCmd())
	rootCmd.AddCommand(newRunsCmd(provider))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	defer observability.Sync()
	if err := newRootCmd(NewStoreProvider()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		observability.Sync()
		osExit(1)
	}
}

// initializeConfig reads the config file, if any, and binds HOS_ environment
// variables.
func initializeConfig(v *viper.Viper) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName("horned-owl-serializer")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("HOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars apply.
	}
	return nil
}

// getConfigFromContext retrieves the configuration stored by the root command.
func getConfigFromContext(ctx context.Context) (config.Interface, error) {
	cfg, ok := ctx.Value(configKey).(config.Interface)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not found in context")
	}
	return cfg, nil
}

package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationLogToFile marks commands whose logs must never reach the terminal.
const annotationLogToFile = "quickconvert/log-to-file"

// NewRootCmd creates the root Cobra command for the quickconvert CLI. It wires
// config loading, logging and tracing, and every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *loggingResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "quickconvert",
		Short:         "Calculator and unit converter",
		Long:          "QuickConvert: a keypad calculator with speed, temperature and currency converters",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if configPath != "" {
				if err := config.ShallowMergeYAML(cfg, configPath); err != nil {
					return fmt.Errorf("loading --config: %w", err)
				}
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overlaid on the configuration")
	cmd.AddCommand(
		NewTUICmd(), NewConvertCmd(), NewCalcCmd(), NewRatesCmd(),
		newConfigCmd(), NewVersionCmd(ver),
	)

	return cmd
}

const rootCmdExample = `  # Open the interactive app
  quickconvert tui

  # Jump straight to the currency screen
  quickconvert tui currency

  # Convert 100 degrees Celsius to Fahrenheit
  quickconvert convert temperature 100 --from C --to F

  # Convert 25 US dollars to euros
  quickconvert convert currency 25 --from USD --to EUR

  # Replay calculator keys
  quickconvert calc "200-10%="

  # Show today's rates for two bases
  quickconvert rates USD EUR

  # Set the API key
  quickconvert config set rates.api_key <key>`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

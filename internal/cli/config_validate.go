package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- Schema version compatibility
- Log level, rates base URL and timeout
- Cache TTL bounds when caching is enabled
- Display precision and digit limits`,
		Example: `  # Validate current configuration
  quickconvert config validate

  # Validate and show detailed information
  quickconvert config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration is valid")
	if verbose {
		apiKey := "not set"
		if cfg.Rates.APIKey != "" {
			apiKey = "set"
		}
		fmt.Fprintf(out, "  File:         %s\n", cfg.ConfigPath())
		fmt.Fprintf(out, "  Schema:       %s\n", cfg.SchemaVersion)
		fmt.Fprintf(out, "  Log level:    %s\n", cfg.Logging.Level)
		fmt.Fprintf(out, "  Rates URL:    %s\n", cfg.Rates.BaseURL)
		fmt.Fprintf(out, "  API key:      %s\n", apiKey)
		fmt.Fprintf(out, "  Rate cache:   %t\n", cfg.Rates.Cache.Enabled)
	}
	return nil
}

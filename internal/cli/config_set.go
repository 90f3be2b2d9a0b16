package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/config"
)

// NewConfigSetCmd creates the config set command. The file is only written
// when the updated configuration validates.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  quickconvert config set rates.api_key <key>
  quickconvert config set rates.cache.enabled true
  quickconvert config set logging.level debug`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			logger.Debug().Str("key", args[0]).Msg("configuration updated")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
			return err
		},
	}
}

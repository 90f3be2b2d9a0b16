package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/config"
	"github.com/quickconvert/quickconvert/internal/screen"
	"github.com/quickconvert/quickconvert/internal/tui"
)

// NewTUICmd creates the tui command that runs the interactive app.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tui [calculator|temperature|speed|currency]",
		Short:       "Open the interactive calculator and converters",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationLogToFile: "true"},
		Example: `  # Open the home menu
  quickconvert tui

  # Open the speed converter directly
  quickconvert tui speed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var start *screen.Kind
			if len(args) == 1 {
				kind, err := screen.ParseKind(args[0])
				if err != nil {
					return err
				}
				start = &kind
			}

			if tui.DetectOutputMode(false, os.Stdin, os.Stdout) != tui.OutputModeInteractive {
				return errors.New("tui requires an interactive terminal; use convert or calc for scripted use")
			}

			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()
			fetcher, err := newFetcher(ctx, cfg)
			if err != nil {
				return err
			}

			app := tui.NewAppModel(tuiOptions(ctx, cfg, fetcher), start)
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("running tui: %w", err)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/config"
	"github.com/quickconvert/quickconvert/internal/logging"
)

type loggingResult = logging.LogPathResult

// setupLogging configures logging based on config file, environment, and CLI flags.
// Commands annotated with annotationLogToFile always log to a file.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	toFile := cmd.Annotations[annotationLogToFile] == "true"
	if toFile && loggingCfg.File == "" {
		loggingCfg.File = config.DefaultLogFile()
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	result := logging.NewLoggerWithPath(logCfg)
	if toFile && !result.UsingFile {
		logCfg.Output = logging.OutputNone
		result = logging.NewLoggerWithPath(logCfg)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if !toFile {
		if result.UsingFile {
			logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
		} else if result.FallbackUsed {
			logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
		}
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Str(logging.FieldTraceID, traceID).Msg("command started")

	return result
}

// cleanupLogging closes the log file, if any.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

// Package main is the quickconvert command.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/quickconvert/quickconvert/internal/cli"
	"github.com/quickconvert/quickconvert/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode maps an error from the root command to a process exit code.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var convErr *cli.ConversionError
	if errors.As(err, &convErr) {
		return cli.ExitCodeConversion
	}
	return 1
}

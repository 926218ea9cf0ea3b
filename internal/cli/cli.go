package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/nodetree/internal/app"
	"github.com/vk/nodetree/internal/input"
	"github.com/vk/nodetree/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nodetree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
nodetree - Builds an ordered tree from a flat list of nodes.

Usage:
  nodetree [options] [INPUT_PATH]
  nodetree --interactive

Arguments:
  INPUT_PATH
    Path to a .json, .yaml/.yml or .hcl node document, or a directory of
    them. Use "-" to read stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the node document.")
	iFlag := flagSet.String("i", "", "Path to the node document (shorthand).")
	formatFlag := flagSet.String("format", "auto", "Input format. Options: 'auto', 'json', 'yaml', 'hcl'.")
	outputFlag := flagSet.String("output", "json", "Output format. Options: 'json', 'yaml', 'text'.")
	interactiveFlag := flagSet.Bool("interactive", false, "Start the interactive menu instead of a single run.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" && !*interactiveFlag {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	inFormat, err := input.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'auto', 'json', 'yaml', or 'hcl'"}
	}

	outFormat, err := report.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'json', 'yaml', or 'text'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:    path,
		InputFormat:  inFormat,
		OutputFormat: outFormat,
		Interactive:  *interactiveFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

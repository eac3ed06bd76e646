package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/behaviortreego/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("behaviortreego", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
BehaviorTreeGo - A behavior definition parser and validator.

Usage:
  behaviortreego [options] [TREE_PATH]

Arguments:
  TREE_PATH
    Path to a behavior definition .xml file.

Options:
`)
		flagSet.PrintDefaults()
	}

	treeFlag := flagSet.String("tree", "", "Path to the behavior definition file.")
	tFlag := flagSet.String("t", "", "Path to the behavior definition file (shorthand).")
	manifestsFlag := flagSet.String("manifests", "modules", "Path to the directory containing node-type manifests.")
	entityFlag := flagSet.String("entity", "", "Taxonomy root (controlled entity kind) to resolve tags under.")
	canonicalFlag := flagSet.String("write-canonical", "", "Write the re-serialized canonical tree to this path ('-' for stdout).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *treeFlag != "" {
		path = *treeFlag
	} else if *tFlag != "" {
		path = *tFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Tree path determined.", "path", path)

	if path == "" {
		slog.Debug("No tree path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		TreePath:      path,
		ManifestsPath: *manifestsFlag,
		EntityKind:    *entityFlag,
		CanonicalOut:  *canonicalFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

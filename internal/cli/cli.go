package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/codesweep/internal/app"
	"github.com/vk/codesweep/internal/config"
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
// Precedence for every setting is: explicit flag, then sweep file, then the
// built-in default.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("codesweep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
codesweep - Run an external analyzer over every matching file in a tree.

Usage:
  codesweep [options] [ROOT_PATH]

Arguments:
  ROOT_PATH
    Directory tree to sweep. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL sweep file.")
	cFlag := flagSet.String("c", "", "Path to an HCL sweep file (shorthand).")
	rootFlag := flagSet.String("root", "", "Directory tree to sweep.")
	patternFlag := flagSet.String("pattern", "", "File name suffix to match, e.g. '.py'.")
	outFlag := flagSet.String("out", "", "Path of the JSON report.")
	contextFlag := flagSet.String("context", "", "Context string passed to every analyzer invocation.")
	analyzerFlag := flagSet.String("analyzer", "", "Analyzer binary to invoke per file.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
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

	sweepFilePath := *configFlag
	if sweepFilePath == "" {
		sweepFilePath = *cFlag
	}

	var sweep *config.Sweep
	if sweepFilePath != "" {
		loaded, err := config.Load(context.Background(), sweepFilePath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		sweep = loaded
	} else {
		sweep = &config.Sweep{}
	}

	root := *rootFlag
	if root == "" && flagSet.NArg() > 0 {
		root = flagSet.Arg(0)
	}

	analyzerArgs := sweep.Args
	if analyzerArgs == nil {
		analyzerArgs = config.DefaultArgs()
	}

	cfg, err := app.NewConfig(app.Config{
		Root:      firstNonEmpty(root, sweep.Root, config.DefaultRoot),
		Pattern:   firstNonEmpty(*patternFlag, sweep.Pattern, config.DefaultPattern),
		Output:    firstNonEmpty(*outFlag, sweep.Output, config.DefaultOutput),
		Analyzer:  firstNonEmpty(*analyzerFlag, sweep.Analyzer, config.DefaultAnalyzer),
		Args:      analyzerArgs,
		Context:   firstNonEmpty(*contextFlag, sweep.Context, config.DefaultContext),
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}

// firstNonEmpty returns the first of its arguments that is not the empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

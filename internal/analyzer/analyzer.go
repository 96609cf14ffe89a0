package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/vk/codesweep/internal/ctxlog"
	"github.com/vk/codesweep/internal/report"
)

// Analyzer describes the external command invoked once per file. Command and
// Args are the fixed part of the argv; the file path and context string are
// appended per invocation.
type Analyzer struct {
	// Command is the analyzer binary, e.g. "swissarmyhammer".
	Command string

	// Args is the fixed subcommand and flags, e.g. ["test", "review/code"].
	Args []string

	// Context is the literal context string passed via --context.
	Context string
}

// New returns an Analyzer for the given command line.
func New(command string, args []string, contextStr string) *Analyzer {
	return &Analyzer{Command: command, Args: args, Context: contextStr}
}

// Analyze runs the analyzer on a single file and returns its record. The
// child's stdout and stderr are captured separately and recorded verbatim.
// A non-zero exit status is not an error: whatever the analyzer wrote to
// stderr is the record's error text. Only a failure to run the process at
// all (missing binary, permission) is returned as an error.
func (a *Analyzer) Analyze(ctx context.Context, file string) (report.Result, error) {
	if a.Command == "" {
		return report.Result{}, fmt.Errorf("analyzer command is empty")
	}

	argv := make([]string, 0, len(a.Args)+4)
	argv = append(argv, a.Args...)
	argv = append(argv, "--file_path", file, "--context", a.Context)

	cmd := exec.CommandContext(ctx, a.Command, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return report.Result{}, fmt.Errorf("failed to run analyzer on %s: %w", file, err)
		}
		// The analyzer exited non-zero. Its stderr is the record's error
		// text; the exit status itself carries no extra meaning here.
		ctxlog.FromContext(ctx).Debug("Analyzer exited non-zero.", "file", file, "exit_code", exitErr.ExitCode())
	}

	return report.Result{
		File:   file,
		Output: stdout.String(),
		Errors: stderr.String(),
	}, nil
}

// Sweep analyzes the given files one at a time, in order, and returns one
// record per file in the same order. The first process-spawn failure aborts
// the sweep.
func (a *Analyzer) Sweep(ctx context.Context, files []string) ([]report.Result, error) {
	logger := ctxlog.FromContext(ctx)

	results := make([]report.Result, 0, len(files))
	for _, file := range files {
		logger.Debug("Analyzing file.", "file", file)
		result, err := a.Analyze(ctx, file)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

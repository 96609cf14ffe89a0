package app

import (
	"context"
	"fmt"

	"github.com/vk/codesweep/internal/analyzer"
	"github.com/vk/codesweep/internal/ctxlog"
	"github.com/vk/codesweep/internal/fsutil"
	"github.com/vk/codesweep/internal/report"
)

// Run executes one sweep end to end: discover files, analyze each one in
// order, write the JSON report, print the summary line.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.FindFilesByExtension(a.config.Root, a.config.Pattern)
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	a.logger.Info("Discovery finished.", "root", a.config.Root, "pattern", a.config.Pattern, "count", len(files))

	anlz := analyzer.New(a.config.Analyzer, a.config.Args, a.config.Context)
	a.logger.Info("🚀 Starting sweep...", "analyzer", a.config.Analyzer)
	results, err := anlz.Sweep(ctx, files)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	a.logger.Info("🏁 Sweep finished.", "analyzed", len(results))

	if err := report.Write(a.config.Output, results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Debug("Report written.", "path", a.config.Output)

	report.Summary(a.outW, len(results), a.config.Output)

	a.logger.Debug("App.Run method finished.")
	return nil
}

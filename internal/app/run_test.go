package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/codesweep/internal/app"
	"github.com/vk/codesweep/internal/report"
	"github.com/vk/codesweep/internal/testutil"
)

// newTestConfig builds a validated config sweeping root with a shell-backed
// analyzer, writing the report into outDir.
func newTestConfig(t *testing.T, root, outDir, script string) *app.Config {
	t.Helper()
	command, args := testutil.ShellAnalyzer(script)
	cfg, err := app.NewConfig(app.Config{
		Root:      root,
		Pattern:   ".py",
		Output:    filepath.Join(outDir, "analysis_results.json"),
		Analyzer:  command,
		Args:      args,
		Context:   "batch analysis",
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)
	return cfg
}

func TestRun_SweepsTreeAndWritesReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"b.py":       "print('b')",
		"a.py":       "print('a')",
		"sub/c.py":   "print('c')",
		"README.txt": "not analyzed",
	})
	outDir := t.TempDir()
	cfg := newTestConfig(t, root, outDir, `echo "reviewed $2"; echo "remark" >&2`)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err := app.NewApp(out, logs, cfg).Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	var got []report.Result
	require.NoError(t, json.Unmarshal(data, &got))

	want := []report.Result{
		{File: filepath.Join(root, "a.py"), Output: fmt.Sprintf("reviewed %s\n", filepath.Join(root, "a.py")), Errors: "remark\n"},
		{File: filepath.Join(root, "b.py"), Output: fmt.Sprintf("reviewed %s\n", filepath.Join(root, "b.py")), Errors: "remark\n"},
		{File: filepath.Join(root, "sub", "c.py"), Output: fmt.Sprintf("reviewed %s\n", filepath.Join(root, "sub", "c.py")), Errors: "remark\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, fmt.Sprintf("Analyzed 3 files. Results saved to %s\n", cfg.Output), out.String())
	require.Contains(t, logs.String(), "run_id=")
	require.Contains(t, logs.String(), "Sweep finished.")
}

func TestRun_EmptyTreeWritesEmptyArray(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	outDir := t.TempDir()
	cfg := newTestConfig(t, root, outDir, `echo unreachable`)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err := app.NewApp(out, logs, cfg).Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(data))

	require.Equal(t, fmt.Sprintf("Analyzed 0 files. Results saved to %s\n", cfg.Output), out.String())
}

func TestRun_MissingRootFailsBeforeWritingReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := filepath.Join(t.TempDir(), "does-not-exist")
	outDir := t.TempDir()
	cfg := newTestConfig(t, root, outDir, `echo unreachable`)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err := app.NewApp(out, logs, cfg).Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to discover files")
	require.NoFileExists(t, cfg.Output)
	require.Empty(t, out.String())
}

func TestRun_UnstartableAnalyzerAbortsSweep(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"a.py": ""})
	outDir := t.TempDir()

	cfg, err := app.NewConfig(app.Config{
		Root:      root,
		Pattern:   ".py",
		Output:    filepath.Join(outDir, "analysis_results.json"),
		Analyzer:  filepath.Join(outDir, "no-such-analyzer"),
		Context:   "batch analysis",
		LogFormat: "json",
		LogLevel:  "info",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err = app.NewApp(out, logs, cfg).Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "sweep failed")
	require.NoFileExists(t, cfg.Output)
}

func TestRun_UnwritableOutputReturnsError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"a.py": ""})
	cfg := newTestConfig(t, root, root, `true`)
	cfg.Output = filepath.Join(root, "missing-dir", "out.json")

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err := app.NewApp(out, logs, cfg).Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write report")
	require.Empty(t, out.String())
}

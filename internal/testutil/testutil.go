// Package testutil provides shared helpers for integration tests: a
// thread-safe log buffer, fixture-tree writing, and a shell-backed stand-in
// for the external analyzer binary.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteTree writes the given relative-path/content pairs under root,
// creating parent directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// ShellAnalyzer returns a command line that runs the given shell script in
// place of a real analyzer. The script sees the per-invocation arguments as
// $1..$4 (--file_path <file> --context <context>).
func ShellAnalyzer(script string) (string, []string) {
	return "/bin/sh", []string{"-c", script, "analyzer"}
}

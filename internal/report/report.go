package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Result is the per-file outcome of one analyzer invocation. Output and
// Errors hold the captured stdout and stderr verbatim; an empty capture is
// an empty string, never null.
type Result struct {
	File   string `json:"file"`
	Output string `json:"output"`
	Errors string `json:"errors"`
}

// Write serializes the results as a two-space indented JSON array to the
// given path. A nil or empty slice still produces a valid empty array.
func Write(path string, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}

	return nil
}

// Summary prints the single human-readable closing line of a sweep.
func Summary(w io.Writer, analyzed int, path string) {
	fmt.Fprintf(w, "Analyzed %d files. Results saved to %s\n", analyzed, path)
}

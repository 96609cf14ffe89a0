package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/codesweep/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Built-in defaults, mirroring the reference analyzer invocation.
const (
	DefaultAnalyzer = "swissarmyhammer"
	DefaultContext  = "batch analysis"
	DefaultPattern  = ".py"
	DefaultRoot     = "."
	DefaultOutput   = "analysis_results.json"
)

// DefaultArgs is the fixed subcommand passed to the default analyzer.
func DefaultArgs() []string {
	return []string{"test", "review/code"}
}

// Sweep is the decoded form of a `sweep` block. All attributes are optional;
// absent ones fall back to flag values and then to the built-in defaults.
type Sweep struct {
	Analyzer string   `hcl:"analyzer,optional"`
	Args     []string `hcl:"args,optional"`
	Context  string   `hcl:"context,optional"`
	Pattern  string   `hcl:"pattern,optional"`
	Root     string   `hcl:"root,optional"`
	Output   string   `hcl:"output,optional"`
}

// sweepFile is the top-level structure of a sweep file for decoding.
type sweepFile struct {
	Sweeps []*Sweep `hcl:"sweep,block"`
}

// Load parses a sweep file and returns its single sweep block. Attribute
// expressions are evaluated against an EvalContext exposing `cwd` and `env`,
// so a sweep file may derive paths from the environment.
func Load(ctx context.Context, path string) (*Sweep, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading sweep file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse sweep file %s: %w", path, diags)
	}

	evalCtx, err := evalContext()
	if err != nil {
		return nil, err
	}

	var parsed sweepFile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode sweep file %s: %w", path, diags)
	}

	if len(parsed.Sweeps) != 1 {
		return nil, fmt.Errorf("sweep file %s must contain exactly one sweep block, found %d", path, len(parsed.Sweeps))
	}

	logger.Debug("Sweep file loaded.", "path", path)
	return parsed.Sweeps[0], nil
}

// evalContext builds the variable scope available to sweep file expressions.
func evalContext() (*hcl.EvalContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	vars := map[string]cty.Value{
		"cwd": cty.StringVal(cwd),
	}
	if len(env) == 0 {
		vars["env"] = cty.MapValEmpty(cty.String)
	} else {
		vars["env"] = cty.MapVal(env)
	}

	return &hcl.EvalContext{Variables: vars}, nil
}

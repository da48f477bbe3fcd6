package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Load parses and decodes the settings file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(hclFile.Body, path)
}

// LoadBytes parses and decodes settings held in memory. filename is only used
// in diagnostics.
func LoadBytes(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return decode(hclFile.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, evalContext(os.Environ()), &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return &f, nil
}

// evalContext exposes the environment as the `env` object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func (f *File) validate() error {
	if f.Resolve != nil && f.Resolve.MaxDepth != nil && *f.Resolve.MaxDepth <= 0 {
		return fmt.Errorf("resolve.max_depth must be positive, got %d", *f.Resolve.MaxDepth)
	}
	if f.Resolve != nil && f.Resolve.DefaultValue != nil && *f.Resolve.DefaultValue == "" {
		return fmt.Errorf("resolve.default_value cannot be empty")
	}
	return nil
}

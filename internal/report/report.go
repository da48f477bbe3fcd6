// Package report writes resolved output variables, either as DZN assignments
// (`name = value;`) or as a single JSON object.
package report

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/specialistvlad/fznnorm/internal/ctxlog"
	"github.com/specialistvlad/fznnorm/internal/resolve"
)

// Format selects the output encoding.
type Format string

const (
	FormatDZN  Format = "dzn"
	FormatJSON Format = "json"
)

// ObjectiveName is the key the solver objective is reported under.
const ObjectiveName = "_objective"

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDZN, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be 'dzn' or 'json'", s)
	}
}

// Resolver is the part of resolve.Resolver the reporter uses.
type Resolver interface {
	ResolveValue(name string) resolve.Value
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithObjective appends the solver objective after the variables.
func WithObjective(value string) Option {
	return func(r *Reporter) {
		r.objective = &value
	}
}

// Reporter writes one solution's output variables to w.
type Reporter struct {
	w         io.Writer
	format    Format
	objective *string
}

// New creates a Reporter. An empty format means DZN.
func New(w io.Writer, format Format, opts ...Option) *Reporter {
	if format == "" {
		format = FormatDZN
	}
	r := &Reporter{w: w, format: format}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Write resolves every name and writes the result in sorted name order.
func (r *Reporter) Write(ctx context.Context, res Resolver, names []string) error {
	logger := ctxlog.FromContext(ctx)

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	entries := make([]entry, 0, len(sorted))
	for _, name := range sorted {
		v := res.ResolveValue(name)
		if v.Source.Fallback() {
			logger.Debug("Output variable fell back to the default value.", "name", name, "source", v.Source.String())
		}
		entries = append(entries, entry{name: name, value: v})
	}

	objective := r.objective
	if objective != nil && slices.Contains(sorted, ObjectiveName) {
		logger.Warn("Objective not reported, an output variable already uses its name.", "name", ObjectiveName)
		objective = nil
	}

	switch r.format {
	case FormatDZN:
		return writeDZN(r.w, entries, objective)
	case FormatJSON:
		return writeJSON(r.w, entries, objective)
	default:
		return fmt.Errorf("unsupported format %q", r.format)
	}
}

type entry struct {
	name  string
	value resolve.Value
}

func writeDZN(w io.Writer, entries []entry, objective *string) error {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s = %s;\n", e.name, e.value.String())
	}
	if objective != nil {
		fmt.Fprintf(&sb, "%s = %s;\n", ObjectiveName, *objective)
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

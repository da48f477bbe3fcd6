package fzn

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/fznnorm/internal/ctxlog"
)

var (
	// identRegex accepts the declared name of a variable.
	identRegex = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	// boundsRegex extracts the index range of an array declaration.
	boundsRegex = regexp.MustCompile(`(?i)^array\s*\[\s*(-?\d+)\s*\.\.\s*(-?\d+)\s*\]`)
	// itemRegex matches statements that can never declare a variable.
	itemRegex = regexp.MustCompile(`^(constraint|solve|predicate)\b`)
)

// Option configures the parser.
type Option func(*parser)

// WithOutputMarkers replaces the annotations that flag output variables.
func WithOutputMarkers(markers ...string) Option {
	return func(p *parser) {
		if len(markers) > 0 {
			p.markers = markers
		}
	}
}

type parser struct {
	ctx     context.Context
	markers []string
	model   *Model
}

// Parse reads the whole declaration text from r and builds a Model. If reading
// fails part way, the statements read so far are still parsed and the
// returned model is usable alongside the error.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Model, error) {
	data, err := io.ReadAll(r)
	model := ParseString(ctx, string(data), opts...)
	if err != nil {
		return model, fmt.Errorf("failed to read declarations: %w", err)
	}
	return model, nil
}

// ParseString builds a Model from declaration text.
func ParseString(ctx context.Context, text string, opts ...Option) *Model {
	p := &parser{
		ctx:     ctx,
		markers: DefaultOutputMarkers,
		model:   NewModel(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, stmt := range strings.Split(stripComments(text), ";") {
		p.statement(stmt)
	}

	ctxlog.FromContext(ctx).Debug("Declarations parsed.",
		"statements", p.model.Stats.Statements,
		"declarations", p.model.Stats.Declarations,
		"skipped", p.model.Stats.Skipped,
		"duplicates", p.model.Stats.Duplicates,
		"outputs", len(p.model.Outputs),
	)
	return p.model
}

// stripComments drops everything from a `%` to the end of its line.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if before, _, found := strings.Cut(line, "%"); found {
			lines[i] = before
		}
	}
	return strings.Join(lines, "\n")
}

func (p *parser) statement(stmt string) {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return
	}
	p.model.Stats.Statements++

	if !strings.Contains(stmt, ":") || itemRegex.MatchString(stmt) {
		p.model.Stats.Skipped++
		return
	}

	name, ok := declaredName(stmt)
	if !ok {
		p.model.Stats.Skipped++
		return
	}

	if prev, exists := p.model.Symbols[name]; exists {
		p.model.Stats.Duplicates++
		ctxlog.FromContext(p.ctx).Warn("Duplicate declaration ignored, keeping the first one.",
			"name", name, "kept", prev.Kind.String())
		return
	}
	p.model.Stats.Declarations++

	if p.isOutput(stmt) {
		p.model.Outputs[name] = struct{}{}
	}

	if r, ok := arrayBounds(stmt); ok {
		p.model.Bounds[name] = r
	}

	def := NativeDef()
	if _, rhs, found := strings.Cut(stmt, "="); found {
		if d, ok := parseRHS(rhs); ok {
			def = d
		}
	}
	p.model.Symbols[name] = def
}

func (p *parser) isOutput(stmt string) bool {
	for _, marker := range p.markers {
		if strings.Contains(stmt, marker) {
			return true
		}
	}
	return false
}

// declaredName isolates the identifier in `type [:: anns] : name [:: anns] [= rhs]`.
func declaredName(stmt string) (string, bool) {
	lhs, _, _ := strings.Cut(stmt, "=")
	decl, _, _ := strings.Cut(lhs, "::")
	i := strings.LastIndex(decl, ":")
	if i < 0 {
		return "", false
	}
	name := strings.TrimSpace(decl[i+1:])
	if !identRegex.MatchString(name) {
		return "", false
	}
	return name, true
}

func arrayBounds(stmt string) (Range, bool) {
	if !strings.HasPrefix(strings.ToLower(stmt), "array") {
		return Range{}, false
	}
	m := boundsRegex.FindStringSubmatch(stmt)
	if m == nil {
		return Range{}, false
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Range{}, false
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Range{}, false
	}
	return Range{Min: lo, Max: hi}, true
}

// parseRHS classifies a right-hand side. Array literals are assumed flat.
func parseRHS(rhs string) (Definition, bool) {
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return Definition{}, false
	}
	if !strings.HasPrefix(rhs, "[") {
		return AliasOf(rhs), true
	}

	end := strings.LastIndex(rhs, "]")
	if end < 0 {
		return Definition{}, false
	}
	content := strings.TrimSpace(rhs[1:end])
	if content == "" {
		return ComposedOf(), true
	}
	parts := strings.Split(content, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return ComposedOf(parts...), true
}

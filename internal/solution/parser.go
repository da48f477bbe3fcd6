package solution

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/specialistvlad/fznnorm/internal/ctxlog"
)

// elementRegex splits `base[index]` keys.
var elementRegex = regexp.MustCompile(`^([^\[]+)\[(.*)\]$`)

const (
	objectiveKey = "objective"
	maxLineSize  = 16 * 1024 * 1024
)

// Option configures the parser.
type Option func(*parser)

// WithReservedKeys replaces the keys whose lines are ignored.
func WithReservedKeys(keys ...string) Option {
	return func(p *parser) {
		if len(keys) == 0 {
			return
		}
		p.reserved = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			p.reserved[k] = struct{}{}
		}
	}
}

type parser struct {
	reserved map[string]struct{}
}

// Parse reads solver output line by line. Malformed lines are skipped; only a
// failure of the underlying reader is returned as an error, together with
// everything collected up to that point.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Solution, error) {
	p := &parser{}
	WithReservedKeys(DefaultReservedKeys...)(p)
	for _, opt := range opts {
		opt(p)
	}

	sol := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		p.line(sol, scanner.Text())
	}

	ctxlog.FromContext(ctx).Debug("Solution parsed.",
		"lines", sol.Lines,
		"values", len(sol.Values),
		"arrays", len(sol.Arrays),
		"skipped", sol.Skipped,
		"has_objective", sol.HasObjective,
	)

	if err := scanner.Err(); err != nil {
		return sol, fmt.Errorf("failed to read solution: %w", err)
	}
	return sol, nil
}

func (p *parser) line(sol *Solution, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	sol.Lines++
	if len(fields) < 2 {
		sol.Skipped++
		return
	}

	key, value := fields[0], fields[1]
	if key == objectiveKey {
		sol.Objective, sol.HasObjective = objectiveValue(fields), true
	}
	if _, reserved := p.reserved[key]; reserved {
		sol.Skipped++
		return
	}
	sol.set(key, value)
}

// objectiveValue handles both `objective 42` and `objective value: 42`.
func objectiveValue(fields []string) string {
	if len(fields) > 2 && strings.HasSuffix(fields[1], ":") {
		return fields[2]
	}
	return fields[1]
}

func splitElementKey(key string) (base, index string, ok bool) {
	m := elementRegex.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

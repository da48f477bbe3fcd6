package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/fznnorm/internal/resolve"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

func writeJSON(w io.Writer, entries []entry, objective *string) error {
	attrs := make(map[string]cty.Value, len(entries)+1)
	for _, e := range entries {
		attrs[e.name] = toCtyValue(e.value)
	}
	if objective != nil {
		attrs[ObjectiveName] = literalToCty(*objective)
	}

	obj := cty.EmptyObjectVal
	if len(attrs) > 0 {
		obj = cty.ObjectVal(attrs)
	}

	data, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return fmt.Errorf("failed to encode output as JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// toCtyValue maps a resolved value onto cty: arrays become tuples so that
// elements of different kinds can sit side by side.
func toCtyValue(v resolve.Value) cty.Value {
	if !v.IsArray() {
		return literalToCty(v.String())
	}
	elems := v.Elems()
	if len(elems) == 0 {
		return cty.EmptyTupleVal
	}
	vals := make([]cty.Value, len(elems))
	for i, e := range elems {
		vals[i] = literalToCty(e)
	}
	return cty.TupleVal(vals)
}

func literalToCty(s string) cty.Value {
	switch s {
	case "true":
		return cty.True
	case "false":
		return cty.False
	}
	if resolve.IsLiteral(s) {
		if n, err := cty.ParseNumberVal(s); err == nil {
			return n
		}
	}
	return cty.StringVal(s)
}

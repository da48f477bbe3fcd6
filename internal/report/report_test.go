package report

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/specialistvlad/fznnorm/internal/ctxlog"
	"github.com/specialistvlad/fznnorm/internal/fzn"
	"github.com/specialistvlad/fznnorm/internal/resolve"
	"github.com/specialistvlad/fznnorm/internal/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDecls = `
var int: x :: output_var;
var bool: b :: output_var = true;
array [1..3] of var int: arr :: output_array([1..3]);
array [1..2] of var float: f :: output_array([1..2]) = [x, 2.5];
var int: hidden;
`

const testSolution = `
x 3
arr[1] 5
arr[3] 7
hidden 1
`

func newTestResolver(t *testing.T) (*resolve.Resolver, []string) {
	t.Helper()
	ctx := context.Background()
	model := fzn.ParseString(ctx, testDecls)
	sol, err := solution.Parse(ctx, strings.NewReader(testSolution))
	require.NoError(t, err)
	return resolve.New(model, sol), model.OutputNames()
}

func TestReporter_DZN(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	res, names := newTestResolver(t)
	out := &bytes.Buffer{}

	// --- Act ---
	err := New(out, FormatDZN).Write(context.Background(), res, names)

	// --- Assert ---
	require.NoError(t, err)
	expected := "arr = [5, 0, 7];\nb = true;\nf = [3, 2.5];\nx = 3;\n"
	assert.Equal(t, expected, out.String())
	assert.NotContains(t, out.String(), "hidden")
}

func TestReporter_DZNWithObjective(t *testing.T) {
	t.Parallel()

	res, _ := newTestResolver(t)
	out := &bytes.Buffer{}

	err := New(out, FormatDZN, WithObjective("11")).Write(context.Background(), res, []string{"x"})

	require.NoError(t, err)
	assert.Equal(t, "x = 3;\n_objective = 11;\n", out.String())
}

func TestReporter_JSON(t *testing.T) {
	t.Parallel()

	res, names := newTestResolver(t)
	out := &bytes.Buffer{}

	err := New(out, FormatJSON, WithObjective("4.5")).Write(context.Background(), res, names)

	require.NoError(t, err)
	assert.JSONEq(t, `{"arr":[5,0,7],"b":true,"f":[3,2.5],"x":3,"_objective":4.5}`, out.String())
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestReporter_JSONEmpty(t *testing.T) {
	t.Parallel()

	res, _ := newTestResolver(t)
	out := &bytes.Buffer{}

	err := New(out, FormatJSON).Write(context.Background(), res, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, out.String())
}

func TestReporter_LogsFallbacks(t *testing.T) {
	t.Parallel()

	res, _ := newTestResolver(t)
	logs := &bytes.Buffer{}
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	err := New(&bytes.Buffer{}, "").Write(ctx, res, []string{"ghost"})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "name=ghost")
	assert.Contains(t, logs.String(), "source=default")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestReporter_WriteError(t *testing.T) {
	t.Parallel()

	res, names := newTestResolver(t)

	for _, f := range []Format{FormatDZN, FormatJSON} {
		err := New(failingWriter{}, f).Write(context.Background(), res, names)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stdout closed")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("dzn")
	require.NoError(t, err)
	assert.Equal(t, FormatDZN, f)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestLiteralToCty(t *testing.T) {
	t.Parallel()

	assert.True(t, literalToCty("true").True())
	assert.Equal(t, "{1,3}", literalToCty("{1,3}").AsString())
	bf := literalToCty("-2").AsBigFloat()
	i, _ := bf.Int64()
	assert.Equal(t, int64(-2), i)
}

func TestReporter_ObjectiveNameCollision(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := context.Background()
	model := fzn.ParseString(ctx, "var int: _objective :: output_var; var int: x :: output_var;")
	sol, err := solution.Parse(ctx, strings.NewReader("_objective 7\nx 1\n"))
	require.NoError(t, err)
	res := resolve.New(model, sol)

	testCases := []struct {
		name   string
		format Format
		check  func(t *testing.T, out string)
	}{
		{
			name:   "dzn keeps the variable once",
			format: FormatDZN,
			check: func(t *testing.T, out string) {
				assert.Equal(t, "_objective = 7;\nx = 1;\n", out)
			},
		},
		{
			name:   "json keeps the variable value",
			format: FormatJSON,
			check: func(t *testing.T, out string) {
				assert.JSONEq(t, `{"_objective":7,"x":1}`, out)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			logs := &bytes.Buffer{}
			logCtx := ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(logs, nil)))

			// --- Act ---
			err := New(out, tc.format, WithObjective("99")).Write(logCtx, res, model.OutputNames())

			// --- Assert ---
			require.NoError(t, err)
			tc.check(t, out.String())
			assert.Contains(t, logs.String(), "Objective not reported")
		})
	}
}

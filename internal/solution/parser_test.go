package solution

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		input  string
		values map[string]string
		arrays map[string]map[string]string
	}{
		{
			name:   "scalars keep their text",
			input:  "x 3\ny -0.50\nz true\n",
			values: map[string]string{"x": "3", "y": "-0.50", "z": "true"},
			arrays: map[string]map[string]string{},
		},
		{
			name:   "array elements populate the sparse table",
			input:  "q[1] 5\nq[3] 7\nother 1\n",
			values: map[string]string{"q[1]": "5", "q[3]": "7", "other": "1"},
			arrays: map[string]map[string]string{"q": {"1": "5", "3": "7"}},
		},
		{
			name: "reserved and malformed lines are skipped",
			input: `
objective 11
no solution
[ 1 2 3 ]
lonely

x 2 (obj:0)
`,
			values: map[string]string{"x": "2"},
			arrays: map[string]map[string]string{},
		},
		{
			name:   "later lines overwrite earlier ones",
			input:  "x 1\nx[2] 4\nx 2\nx[2] 9\n",
			values: map[string]string{"x": "2", "x[2]": "9"},
			arrays: map[string]map[string]string{"x": {"2": "9"}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			sol, err := Parse(context.Background(), strings.NewReader(tc.input))

			// --- Assert ---
			require.NoError(t, err)
			if diff := cmp.Diff(tc.values, sol.Values); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.arrays, sol.Arrays); diff != "" {
				t.Errorf("arrays mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Objective(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "objective 42\n", want: "42"},
		{name: "labelled", input: "objective value: 11.36\n", want: "11.36"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sol, err := Parse(context.Background(), strings.NewReader(tc.input))

			require.NoError(t, err)
			assert.True(t, sol.HasObjective)
			assert.Equal(t, tc.want, sol.Objective)
			_, ok := sol.Lookup("objective")
			assert.False(t, ok, "objective must not be a variable value")
		})
	}
}

func TestParse_CustomReservedKeys(t *testing.T) {
	t.Parallel()

	input := "objective 3\nstatus OPTIMAL\nx 1\n"

	sol, err := Parse(context.Background(), strings.NewReader(input), WithReservedKeys("status"))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"objective": "3", "x": "1"}, sol.Values)
	assert.True(t, sol.HasObjective)
}

func TestParse_Counters(t *testing.T) {
	t.Parallel()

	sol, err := Parse(context.Background(), strings.NewReader("a 1\n\nno solution\nb\n"))

	require.NoError(t, err)
	assert.Equal(t, 3, sol.Lines)
	assert.Equal(t, 2, sol.Skipped)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestParse_ReaderError(t *testing.T) {
	t.Parallel()

	sol, err := Parse(context.Background(), brokenReader{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
	assert.NotNil(t, sol)
}

func TestSolution_Elements(t *testing.T) {
	t.Parallel()

	sol := New()
	sol.set("a[1]", "4")
	sol.set("b", "2")

	elems, ok := sol.Elements("a")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"1": "4"}, elems)

	_, ok = sol.Elements("b")
	assert.False(t, ok)
}

package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plain returns a formatter without styling so output is byte-exact.
func plain() *Formatter {
	return New(NoColorStyles())
}

func TestFormatScalars(t *testing.T) {
	f := plain()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null\n"},
		{"string verbatim", "hello world", "hello world\n"},
		{"int", 42, "42\n"},
		{"negative int", -7, "-7\n"},
		{"uint", uint8(255), "255\n"},
		{"float", 3.25, "3.25\n"},
		{"bool true", true, "true\n"},
		{"bool false", false, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFunction(t *testing.T) {
	got, err := plain().Format(TestFormatFunction)
	require.NoError(t, err)
	assert.Contains(t, got, "[Function: ")
	assert.Contains(t, got, "TestFormatFunction")
	assert.Equal(t, byte('\n'), got[len(got)-1])
}

type opaque struct{}

func (opaque) String() string { return "opaque-id-7" }

func TestFormatStringer(t *testing.T) {
	got, err := plain().Format(opaque{})
	require.NoError(t, err)
	assert.Equal(t, "[Stringer: opaque-id-7]\n", got)
}

func TestFormatComposite(t *testing.T) {
	f := plain()

	got, err := f.Format(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}\n", got)

	got, err = f.Format([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", got)

	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	got, err = f.Format(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"x\": 1,\n    \"y\": 2\n}\n", got)
}

func TestFormatCyclicValueFails(t *testing.T) {
	cycle := map[string]any{}
	cycle["self"] = cycle

	_, err := plain().Format(cycle)
	require.Error(t, err)
}

func TestFormatNilPointer(t *testing.T) {
	var p *int
	got, err := plain().Format(p)
	require.NoError(t, err)
	assert.Equal(t, "null\n", got)
}

func TestUndefined(t *testing.T) {
	assert.Equal(t, "undefined\n", plain().Undefined())
}

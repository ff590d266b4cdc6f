package starlark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

func TestGoToStarlark(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantStr string
		wantErr bool
	}{
		{name: "string", input: "hello", wantStr: `"hello"`},
		{name: "int", input: 42, wantStr: "42"},
		{name: "int64", input: int64(123456789), wantStr: "123456789"},
		{name: "float64", input: 34.5, wantStr: "34.5"},
		{name: "bool", input: true, wantStr: "True"},
		{name: "nil", input: nil, wantStr: "None"},
		{name: "int slice", input: []int{0, 2, 3, 1}, wantStr: "[0, 2, 3, 1]"},
		{name: "float slice", input: []float64{-45, 45}, wantStr: "[-45.0, 45.0]"},
		{name: "string slice", input: []string{"a", "b"}, wantStr: `["a", "b"]`},
		{name: "nested", input: []any{1, "x", []any{true}}, wantStr: `[1, "x", [True]]`},
		{name: "map keys sorted", input: map[string]any{"b": 1, "a": 2}, wantStr: `{"a": 2, "b": 1}`},
		{name: "unsupported", input: struct{}{}, wantErr: true},
		{name: "unsupported in list", input: []any{struct{}{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GoToStarlark(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStr, got.String())
		})
	}
}

func TestToGo(t *testing.T) {
	dict := starlark.NewDict(1)
	require.NoError(t, dict.SetKey(starlark.String("bore"), starlark.Float(86)))

	tests := []struct {
		name  string
		input starlark.Value
		want  any
	}{
		{name: "none", input: starlark.None, want: nil},
		{name: "string", input: starlark.String("V8"), want: "V8"},
		{name: "int", input: starlark.MakeInt(7), want: int64(7)},
		{name: "float", input: starlark.Float(0.999), want: 0.999},
		{name: "bool", input: starlark.False, want: false},
		{name: "list", input: starlark.NewList([]starlark.Value{starlark.MakeInt(1)}), want: []any{int64(1)}},
		{name: "tuple", input: starlark.Tuple{starlark.String("a")}, want: []any{"a"}},
		{name: "dict", input: dict, want: map[string]any{"bore": 86.0}},
		{
			name: "struct",
			input: starlarkstruct.FromStringDict(starlark.String("bank"), starlark.StringDict{
				"angle": starlark.Float(-45),
				"flip":  starlark.True,
			}),
			want: map[string]any{"angle": -45.0, "flip": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToGo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToGo_Errors(t *testing.T) {
	t.Run("non-string dict key", func(t *testing.T) {
		dict := starlark.NewDict(1)
		require.NoError(t, dict.SetKey(starlark.MakeInt(1), starlark.None))
		_, err := ToGo(dict)
		assert.ErrorContains(t, err, "dict key must be string")
	})

	t.Run("function", func(t *testing.T) {
		_, err := ToGo(starlark.NewBuiltin("f", nil))
		assert.ErrorContains(t, err, "cannot convert builtin_function_or_method")
	})
}

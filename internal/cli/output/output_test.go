package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTest(mode OutputMode, tty bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, tty, mode), out, errOut
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
		err  bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"TEXT", ModeText, false},
		{" markdown ", ModeMarkdown, false},
		{"json", ModeJSON, false},
		{"yaml", ModeAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name string
		mode OutputMode
		tty  bool
		want OutputMode
	}{
		{"auto tty", ModeAuto, true, ModeText},
		{"auto pipe", ModeAuto, false, ModeMarkdown},
		{"empty pipe", "", false, ModeMarkdown},
		{"text pipe", ModeText, false, ModeText},
		{"markdown tty", ModeMarkdown, true, ModeMarkdown},
		{"json tty", ModeJSON, true, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTest(tt.mode, tt.tty)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.tty, r.IsTTY())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestMarkdownOutput(t *testing.T) {
	r, out, errOut := newTest(ModeMarkdown, false)

	r.Header(1, "Firing Order")
	r.KeyValue("Cylinders", "8")
	r.StatusLine("enginegen.yaml", "success", "created")
	r.Success("done")
	r.Muted("quiet")
	r.Warning("careful")

	got := out.String()
	assert.Contains(t, got, "# Firing Order\n\n")
	assert.Contains(t, got, "- **Cylinders:** 8\n")
	assert.Contains(t, got, "- enginegen.yaml: success (created)\n")
	assert.Contains(t, got, "done\nquiet\n")
	assert.Equal(t, "Warning: careful\n", errOut.String())
	assert.False(t, ansi.MatchString(got+errOut.String()))
}

func TestTextOutput_PipeHasNoANSI(t *testing.T) {
	r, out, _ := newTest(ModeText, false)

	r.Header(2, "Timing")
	r.StatusLine("engine.star", "success", "")
	r.KeyValue("TDC", "90")

	got := out.String()
	assert.Contains(t, got, "Timing")
	assert.Contains(t, got, "✓ engine.star")
	assert.Contains(t, got, "TDC:")
	assert.False(t, ansi.MatchString(got))
}

func TestError(t *testing.T) {
	r, out, errOut := newTest(ModeAuto, false)
	r.Error("boom")
	assert.Empty(t, out.String())
	assert.Equal(t, "Error: boom\n", errOut.String())
}

func TestJSON(t *testing.T) {
	r, out, _ := newTest(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]any{"order": []int{1, 3, 4, 2}}))

	var got map[string][]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{1, 3, 4, 2}, got["order"])
	assert.Contains(t, out.String(), "\n  \"order\"")
}

func TestTable(t *testing.T) {
	header := []string{"Cylinder", "Journal"}
	rows := [][]any{{1, 0.0}, {2, 540.5}}

	t.Run("markdown", func(t *testing.T) {
		r, out, _ := newTest(ModeMarkdown, false)
		r.Table(header, rows)
		got := out.String()
		assert.Contains(t, got, "| Cylinder | Journal |")
		assert.Contains(t, got, "| 2 | 540.5 |")
	})

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTest(ModeText, false)
		r.Table(header, rows)
		got := out.String()
		assert.Contains(t, got, "CYLINDER")
		assert.Contains(t, got, "540.5")
		assert.False(t, ansi.MatchString(got))
	})

	t.Run("empty", func(t *testing.T) {
		r, out, _ := newTest(ModeText, false)
		r.Table(header, nil)
		assert.Equal(t, "(0 rows)\n", out.String())
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Banks", FormatHeader(2, "Banks"))
	assert.Equal(t, "# Banks", FormatHeader(0, "Banks"))
	assert.Equal(t, "- **Fuel:** gasoline", FormatKeyValue("Fuel", "gasoline"))
}

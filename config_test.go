package asciitable_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/asciitable"
)

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    asciitable.Alignment
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: asciitable.AlignDefault, wantErr: require.NoError},
		"left":    {input: "left", want: asciitable.AlignLeft, wantErr: require.NoError},
		"center":  {input: "Center", want: asciitable.AlignCenter, wantErr: require.NoError},
		"right":   {input: " RIGHT ", want: asciitable.AlignRight, wantErr: require.NoError},
		"unknown": {input: "justify", want: asciitable.AlignDefault, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := asciitable.ParseAlignment(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlignmentSentinel(t *testing.T) {
	t.Parallel()
	_, err := asciitable.ParseAlignment("justify")
	assert.ErrorIs(t, err, asciitable.ErrUnsupportedAlignment)
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    asciitable.BorderStyle
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: asciitable.BorderSquare, wantErr: require.NoError},
		"square":  {input: "square", want: asciitable.BorderSquare, wantErr: require.NoError},
		"rounded": {input: "rounded", want: asciitable.BorderRounded, wantErr: require.NoError},
		"heavy":   {input: "Heavy", want: asciitable.BorderHeavy, wantErr: require.NoError},
		"double":  {input: "double", want: asciitable.BorderDouble, wantErr: require.NoError},
		"ascii":   {input: "ASCII", want: asciitable.BorderASCII, wantErr: require.NoError},
		"unknown": {input: "dotted", want: asciitable.BorderSquare, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := asciitable.ParseBorder(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "center", asciitable.AlignCenter.String())
	assert.Equal(t, "Alignment(9)", asciitable.Alignment(9).String())
	assert.Equal(t, "rounded", asciitable.BorderRounded.String())
	assert.Equal(t, "BorderStyle(9)", asciitable.BorderStyle(9).String())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	doc := `
max_width: 60
default_align: right
border: rounded
columns:
  0: {header: name, align: left, max_width: 12}
  2:
    header: "total"
`
	cfg, err := asciitable.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, asciitable.Config{
		MaxWidth:     60,
		DefaultAlign: asciitable.AlignRight,
		Border:       asciitable.BorderRounded,
		Columns: map[int]asciitable.Column{
			0: {Header: "name", Align: asciitable.AlignLeft, MaxWidth: 12},
			2: {Header: "total"},
		},
	}, cfg)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"empty document": "",
		"only border":    "border: square\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg, err := asciitable.LoadConfig(strings.NewReader(doc))
			require.NoError(t, err)
			assert.Equal(t, asciitable.DefaultConfig(), cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc    string
		target error
	}{
		"unknown alignment":    {doc: "default_align: justify\n", target: asciitable.ErrUnsupportedAlignment},
		"unknown border":       {doc: "border: dotted\n", target: asciitable.ErrUnsupportedBorder},
		"negative width":       {doc: "max_width: -1\n", target: asciitable.ErrInvalidConfig},
		"negative column cap":  {doc: "columns:\n  0: {max_width: -2}\n", target: asciitable.ErrInvalidConfig},
		"negative column":      {doc: "columns:\n  -1: {header: x}\n", target: asciitable.ErrInvalidConfig},
		"unknown field":        {doc: "colour: red\n", target: asciitable.ErrInvalidConfig},
		"malformed yaml":       {doc: "max_width: [\n", target: asciitable.ErrInvalidConfig},
		"column align unknown": {doc: "columns:\n  1: {align: up}\n", target: asciitable.ErrUnsupportedAlignment},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := asciitable.LoadConfig(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, asciitable.ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, asciitable.DefaultConfig().Validate())

	cfg := asciitable.Config{
		MaxWidth:     -5,
		DefaultAlign: asciitable.Alignment(7),
		Border:       asciitable.BorderStyle(7),
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, asciitable.ErrInvalidConfig)
	assert.ErrorIs(t, err, asciitable.ErrUnsupportedAlignment)
	assert.ErrorIs(t, err, asciitable.ErrUnsupportedBorder)
	assert.Contains(t, err.Error(), "max_width must not be negative")
}

func TestValidateColumnOrder(t *testing.T) {
	t.Parallel()
	cfg := asciitable.Config{Columns: map[int]asciitable.Column{
		3:  {MaxWidth: -1},
		0:  {MaxWidth: -1},
		-2: {Header: "x"},
		1:  {MaxWidth: -1},
	}}
	err := cfg.Validate()
	require.ErrorIs(t, err, asciitable.ErrInvalidConfig)
	msg := err.Error()
	for _, pair := range [][2]string{
		{"got -2", "column 0:"},
		{"column 0:", "column 1:"},
		{"column 1:", "column 3:"},
	} {
		assert.Less(t, strings.Index(msg, pair[0]), strings.Index(msg, pair[1]), msg)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := asciitable.Config{
		MaxWidth:     40,
		DefaultAlign: asciitable.AlignCenter,
		Border:       asciitable.BorderDouble,
		Columns: map[int]asciitable.Column{
			1: {Header: "qty", Align: asciitable.AlignRight, MaxWidth: 6},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, asciitable.WriteConfig(&buf, cfg))
	assert.Contains(t, buf.String(), "default_align: center")
	assert.Contains(t, buf.String(), "border: double")

	got, err := asciitable.LoadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestWriteConfigOmitsDefaults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, asciitable.WriteConfig(&buf, asciitable.DefaultConfig()))
	assert.Equal(t, "max_width: 80\n", buf.String())
}

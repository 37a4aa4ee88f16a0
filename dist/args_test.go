package dist

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestParseSpread(t *testing.T) {
	for i, tc := range []struct {
		in   any
		want Spread
	}{
		{true, Auto()},
		{2, Symmetric(2)},
		{1.5, Symmetric(1.5)},
		{[]float64{-1, 2}, Between(-1, 2)},
		{[]any{10, 90}, Between(10, 90)},
	} {
		got, err := parseSpread(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("%d. parseSpread(%v) = %v, %v, want %v", i, tc.in, got, err, tc.want)
		}
	}
	for _, in := range []any{"wide", []float64{1, 2, 3}} {
		if _, err := parseSpread(in); err == nil {
			t.Errorf("parseSpread(%v): missing error", in)
		}
	}
}

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs(map[string]any{
		"mean":        true,
		"shade":       true,
		"fadepctiles": 90,
		"fadelabel":   "90% of runs",
		"barc":        "red",
		"capsize":     4,
		"boxdata":     []any{[]float64{0, 1}, []float64{2, 3}},
		"colour":      "blue",
	}, Options{})
	require.NoError(t, err)

	assert.True(t, o.Means)
	assert.Equal(t, Auto(), o.Shade.Std)
	assert.Equal(t, Symmetric(90), o.Fade.Pctile)
	assert.Equal(t, "90% of runs", o.Fade.Label)
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, o.Box.Data)
	require.NotNil(t, o.Styles)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, o.Styles[Bar].Line.Color)
	assert.Equal(t, vg.Points(8), o.Styles[Bar].CapWidth)
	assert.Equal(t, []string{"colour"}, o.Unused)
	assert.Empty(t, o.pending)
}

func TestParseArgsHide(t *testing.T) {
	o, err := ParseArgs(map[string]any{"means": true, "bars": false}, Options{Env: quiet()})
	require.NoError(t, err)
	assert.True(t, o.Bar.Hide)

	res, err := ErrorRanges(sample, o)
	require.NoError(t, err)
	assert.Empty(t, res.Indicators)
}

func TestParseArgsConflicts(t *testing.T) {
	o, err := ParseArgs(map[string]any{"bars": true, "barstd": 2, "median": true}, Options{Env: quiet()})
	require.NoError(t, err)
	assert.Len(t, o.pending, 1)
	assert.Equal(t, Auto(), o.Bar.Std, "bars sorts before barstd")

	res, err := ErrorRanges(sample, o)
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)
	assert.Equal(t, "3σ range", res.Get(Bar).Label)
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range []map[string]any{
		{"barstds": "wide"},
		{"boxdata": "x"},
		{"shadecolor": "no-such-color"},
		{"fadealpha": "half"},
		{"means": 1},
		{"boxlabel": 3},
	} {
		_, err := ParseArgs(args, Options{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseArgs(%v) = %v, want ErrInvalidInput", args, err)
		}
	}
}

package kwargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"BarStd", "barstd"},
		{"bar_std", "barstd"},
		{"barstd", "barstd"},
		{"N", "n"},
		{" vmin ", "vmin"},
		{"shadePctile", "shadepctile"},
	} {
		if got := Key(tc.in); got != tc.want {
			t.Errorf("Key(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBag(t *testing.T) {
	b := New(map[string]any{
		"N":        5,
		"Vmin":     -1.5,
		"discrete": true,
		"values":   []any{1, 2.5, 4},
		"mystery":  "x",
	}, map[string]string{"N": "levels"})

	n, ok, err := b.Int("levels")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	x, ok, err := b.Float("vmin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -1.5, x)

	d, err := b.Bool("discrete")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, *d)

	vs, ok, err := b.Floats("values")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2.5, 4}, vs)

	assert.Equal(t, []string{"mystery"}, b.Unused())
	assert.Empty(t, b.Warnings())

	_, _, err = b.Float("mystery")
	assert.Error(t, err)
}

func TestBagConflict(t *testing.T) {
	b := New(map[string]any{"N": 5, "levels": 7}, map[string]string{"n": "levels"})
	n, _, err := b.Int("levels")
	require.NoError(t, err)
	assert.Equal(t, 5, n, "N sorts before levels")
	assert.Len(t, b.Warnings(), 1)
	assert.Empty(t, b.Unused())
}

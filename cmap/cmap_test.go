package cmap

import (
	"image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
}

func TestAt(t *testing.T) {
	c := New("test", Sequential, []color.Color{red, blue})
	assert.Equal(t, rgba(red), rgba(c.At(0)))
	assert.Equal(t, rgba(blue), rgba(c.At(1)))
	assert.Equal(t, rgba(red), rgba(c.At(-1)))
	assert.Equal(t, color.Transparent, c.At(math.NaN()))

	c.Under, c.Over = green, green
	assert.Equal(t, rgba(green), rgba(c.At(-0.1)))
	assert.Equal(t, rgba(green), rgba(c.At(1.1)))

	q := FromColors("q", red, green, blue)
	assert.Equal(t, red, q.At(0.2))
	assert.Equal(t, green, q.At(0.5))
	assert.Equal(t, blue, q.At(1))
}

func TestResample(t *testing.T) {
	q := FromColors("q", red, green)
	assert.Equal(t, []color.Color{red, green, red}, q.Resample(3).Colors)
	assert.Len(t, q.Colors, 2, "original untouched")

	s := New("s", Sequential, []color.Color{red, blue}).Resample(5)
	require.Len(t, s.Colors, 5)
	assert.Equal(t, rgba(red), rgba(s.Colors[0]))
	assert.Equal(t, rgba(blue), rgba(s.Colors[4]))
}

func TestReversedAndShifted(t *testing.T) {
	c := New("c", Cyclic, []color.Color{red, green, blue, red})
	c.Under = green
	r := c.Reversed()
	assert.Equal(t, []color.Color{red, blue, green, red}, r.Colors)
	assert.Equal(t, green, r.Over)
	assert.Nil(t, r.Under)

	s := c.Shifted()
	assert.Equal(t, []color.Color{blue, red, red, green}, s.Colors)
}

func TestLookup(t *testing.T) {
	v, err := Lookup("Viridis")
	require.NoError(t, err)
	assert.Equal(t, Sequential, v.Kind)

	vr, err := Lookup("viridis_r")
	require.NoError(t, err)
	assert.Equal(t, v.Colors[0], vr.Colors[len(vr.Colors)-1])

	v.Colors[0] = red
	again, err := Lookup("viridis")
	require.NoError(t, err)
	assert.NotEqual(t, red, again.Colors[0], "lookups return copies")

	_, err = Lookup("no-such-map")
	assert.True(t, errors.Is(err, ErrUnknown))

	for _, name := range []string{"coolwarm", "rdbu", "tab10", "set1", "blues", "hue", "heat", "kindlmann"} {
		_, err := Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestIsDiverging(t *testing.T) {
	assert.True(t, IsDiverging("coolwarm"))
	assert.True(t, IsDiverging("RdBu_r"))
	assert.True(t, IsDiverging("_rdbu_copy"))
	assert.False(t, IsDiverging("viridis"))
	assert.False(t, IsDiverging("unknown"))
	assert.Equal(t, "rdbu", BaseName("RdBu_r_s"))
}

func TestParseExtend(t *testing.T) {
	for s, want := range map[string]Extend{"neither": ExtendNeither, "MIN": ExtendMin, "max": ExtendMax, "both": ExtendBoth} {
		got, err := ParseExtend(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseExtend("sideways")
	assert.Error(t, err)
	assert.True(t, ExtendBoth.HasMin() && ExtendBoth.HasMax())
	assert.False(t, ExtendMin.HasMax())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, rgba(red), rgba(c))

	c, err = ParseColor("#0000ff")
	require.NoError(t, err)
	assert.Equal(t, rgba(blue), rgba(c))

	_, err = ParseColor("not a color")
	assert.Error(t, err)

	cs, err := ParseColors("green", "00ff00")
	require.NoError(t, err)
	assert.Len(t, cs, 2)
}

// Package cmap provides colormaps: ordered color lists tagged with a
// kind, optional under and over colors and an extend setting, together
// with a registry of named colormaps.
package cmap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ----------------------------------------------------------------------------
// Kind

// Kind classifies colormaps.
type Kind int

const (
	KindAuto Kind = iota // Not determined.
	Sequential
	Diverging
	Cyclic
	Qualitative
)

var kindNames = []string{"auto", "sequential", "diverging", "cyclic", "qualitative"}

// String returns the name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ----------------------------------------------------------------------------
// Extend

// Extend determines whether out-of-range data get dedicated colors.
type Extend int

const (
	ExtendNeither Extend = iota
	ExtendMin
	ExtendMax
	ExtendBoth
)

// String returns the name of e.
func (e Extend) String() string {
	return []string{"neither", "min", "max", "both"}[int(e)]
}

// HasMin reports whether under-range data get their own color.
func (e Extend) HasMin() bool { return e == ExtendMin || e == ExtendBoth }

// HasMax reports whether over-range data get their own color.
func (e Extend) HasMax() bool { return e == ExtendMax || e == ExtendBoth }

// ParseExtend converts "neither", "min", "max" or "both" to an Extend.
func ParseExtend(s string) (Extend, error) {
	switch strings.ToLower(s) {
	case "", "neither", "none":
		return ExtendNeither, nil
	case "min":
		return ExtendMin, nil
	case "max":
		return ExtendMax, nil
	case "both":
		return ExtendBoth, nil
	}
	return ExtendNeither, fmt.Errorf("cmap: invalid extend %q", s)
}

// ----------------------------------------------------------------------------
// Colormap

// Colormap is an ordered list of colors. Sequential, diverging and
// cyclic colormaps interpolate between their colors, qualitative ones
// pick the nearest color. A Colormap is not modified after
// construction: every change returns a copy.
type Colormap struct {
	Name   string
	Kind   Kind
	Colors []color.Color

	// Under and Over are used for values below 0 and above 1; nil means
	// the first and last color.
	Under, Over color.Color

	// Extend records which out-of-range colors a colorbar should show.
	Extend Extend
}

// New returns a colormap with a copy of colors.
func New(name string, kind Kind, colors []color.Color) *Colormap {
	return &Colormap{
		Name:   name,
		Kind:   kind,
		Colors: append([]color.Color(nil), colors...),
	}
}

// FromColors returns a qualitative colormap with the given colors.
func FromColors(name string, colors ...color.Color) *Colormap {
	return New(name, Qualitative, colors)
}

// Copy returns a copy of c.
func (c *Colormap) Copy() *Colormap {
	d := *c
	d.Colors = append([]color.Color(nil), c.Colors...)
	return &d
}

// Len returns the number of colors.
func (c *Colormap) Len() int { return len(c.Colors) }

// IsCyclic reports whether c wraps around.
func (c *Colormap) IsCyclic() bool { return c.Kind == Cyclic }

// IsQualitative reports whether c is a list of distinct colors.
func (c *Colormap) IsQualitative() bool { return c.Kind == Qualitative }

// At returns the color at position t in [0,1]. Positions below 0 and
// above 1 yield the under and over colors, NaN yields transparent.
func (c *Colormap) At(t float64) color.Color {
	n := len(c.Colors)
	switch {
	case math.IsNaN(t) || n == 0:
		return color.Transparent
	case t < 0:
		if c.Under != nil {
			return c.Under
		}
		return c.Colors[0]
	case t > 1:
		if c.Over != nil {
			return c.Over
		}
		return c.Colors[n-1]
	case n == 1:
		return c.Colors[0]
	}

	if c.Kind == Qualitative {
		i := int(t * float64(n))
		if i >= n {
			i = n - 1
		}
		return c.Colors[i]
	}

	idx := t * float64(n-1)
	lower := int(idx)
	if lower >= n-1 {
		return c.Colors[n-1]
	}
	return blend(c.Colors[lower], c.Colors[lower+1], idx-float64(lower))
}

// blend interpolates in CIE L*a*b* space.
func blend(c1, c2 color.Color, t float64) color.Color {
	a, ok1 := colorful.MakeColor(c1)
	b, ok2 := colorful.MakeColor(c2)
	if !ok1 || !ok2 {
		if t < 0.5 {
			return c1
		}
		return c2
	}
	return a.BlendLab(b, t).Clamped()
}

// Cycle returns n colors taken from c with wraparound.
func (c *Colormap) Cycle(n int) []color.Color {
	out := make([]color.Color, 0, n)
	for i := 0; i < n && len(c.Colors) > 0; i++ {
		out = append(out, c.Colors[i%len(c.Colors)])
	}
	return out
}

// WithColors returns a copy of c with the given colors.
func (c *Colormap) WithColors(colors []color.Color) *Colormap {
	d := c.Copy()
	d.Colors = append([]color.Color(nil), colors...)
	return d
}

// Resample returns a copy of c with n colors. Qualitative colormaps are
// cycled, the others are sampled evenly.
func (c *Colormap) Resample(n int) *Colormap {
	if n <= 0 || len(c.Colors) == 0 {
		return c.Copy()
	}
	if c.Kind == Qualitative {
		return c.WithColors(c.Cycle(n))
	}
	colors := make([]color.Color, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = c.At(t)
	}
	return c.WithColors(colors)
}

// Reversed returns c with the order of colors and of Under and Over
// reversed.
func (c *Colormap) Reversed() *Colormap {
	d := c.Copy()
	for i, j := 0, len(d.Colors)-1; i < j; i, j = i+1, j-1 {
		d.Colors[i], d.Colors[j] = d.Colors[j], d.Colors[i]
	}
	d.Under, d.Over = c.Over, c.Under
	d.Name = c.Name + "_r"
	return d
}

// Shifted returns c rotated by half its length, i.e. by 180 degrees for
// a cyclic colormap.
func (c *Colormap) Shifted() *Colormap {
	d := c.Copy()
	n := len(d.Colors)
	for i := range d.Colors {
		d.Colors[i] = c.Colors[(i+n/2)%n]
	}
	d.Name = c.Name + "_s"
	return d
}

func (c *Colormap) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s, %d colors, extend=%s)", c.Name, c.Kind, len(c.Colors), c.Extend)
}

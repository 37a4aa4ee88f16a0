package dist

import (
	"image/color"
	"math"

	"github.com/vdobler/colorscale/cmap"
	"github.com/vdobler/colorscale/rc"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how an indicator is drawn.
type Style struct {
	// Line draws bars and boxes and the outline of bands.
	Line draw.LineStyle

	// CapWidth is the width of the caps of thin bars.
	CapWidth vg.Length

	// Fill is the color of bands; nil means the color of the plot the
	// band belongs to.
	Fill  color.Color
	Alpha float64

	ZOrder float64

	// Marker is drawn at the center of boxes if its Radius is positive.
	Marker draw.GlyphStyle
}

// FillColor returns the band color derived from parent with the
// style's opacity applied.
func (s Style) FillColor(parent color.Color) color.Color {
	c := s.Fill
	if c == nil {
		c = parent
	}
	if c == nil {
		c = s.Line.Color
	}
	if c == nil {
		return color.Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * s.Alpha))
	return n
}

// Styles holds one style per tier.
type Styles [4]Style

// DefaultStyles returns the tier styles derived from the errorbar
// section of cfg. Boxes are four times as thick as bars and have no
// caps; fading is half as opaque as shading.
func DefaultStyles(cfg *rc.Config) Styles {
	cfg = rc.Or(cfg)
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(f * float64(x))
	}
	edge, err := cmap.ParseColor(cfg.Errorbar.Color)
	if err != nil {
		edge = color.Black
	}
	lw := vg.Points(cfg.Errorbar.LineWidth)

	var s Styles
	s[Bar].Line.Color = edge
	s[Bar].Line.Width = lw
	s[Bar].CapWidth = scale(vg.Points(cfg.Errorbar.CapSize), 2)
	s[Bar].Alpha = 1
	s[Bar].ZOrder = cfg.Errorbar.ZOrder

	s[Box].Line.Color = edge
	s[Box].Line.Width = scale(lw, 4)
	s[Box].Alpha = 1
	s[Box].ZOrder = cfg.Errorbar.ZOrder
	s[Box].Marker.Color = color.White
	s[Box].Marker.Shape = draw.CircleGlyph{}

	s[Shade].Alpha = cfg.Errorbar.Alpha
	s[Shade].ZOrder = 1.5
	s[Fade].Alpha = 0.5 * s[Shade].Alpha
	s[Fade].ZOrder = s[Shade].ZOrder
	return s
}

// withMarker turns the box center marker on or off.
func (s *Styles) withMarker(on bool) {
	if on {
		s[Box].Marker.Radius = vg.Length(math.Sqrt(float64(s[Box].Line.Width)))
	} else {
		s[Box].Marker.Radius = 0
	}
}

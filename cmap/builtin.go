package cmap

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

func init() {
	for _, c := range []*Colormap{
		table("viridis", Sequential, viridis),
		table("plasma", Sequential, plasma),
		table("inferno", Sequential, inferno),
		table("magma", Sequential, magma),
		table("tab20", Qualitative, tab20),
		table("tab10", Qualitative, tab20[:10]),
		fromPalette("heat", Sequential, palette.Heat(64, 1)),
		fromPalette("hue", Cyclic, palette.Rainbow(64, 0, 1-1.0/64, 1, 1, 1)),
		fromColorMap("coolwarm", Diverging, moreland.SmoothBlueRed()),
		fromColorMap("kindlmann", Sequential, moreland.Kindlmann()),
		fromColorMap("blackbody", Sequential, moreland.BlackBody()),
	} {
		Register(c)
	}

	for kind, schemes := range brewerSchemes {
		pt := brewer.TypeSequential
		switch kind {
		case Diverging:
			pt = brewer.TypeDiverging
		case Qualitative:
			pt = brewer.TypeQualitative
		}
		for name, n := range schemes {
			p, err := brewer.GetPalette(pt, name, n)
			if err != nil {
				continue
			}
			Register(fromPalette(strings.ToLower(name), kind, p))
		}
	}
}

// brewerSchemes lists the ColorBrewer schemes with their largest size.
var brewerSchemes = map[Kind]map[string]int{
	Sequential: {
		"Blues": 9, "Greens": 9, "Greys": 9, "Oranges": 9, "Purples": 9,
		"Reds": 9, "BuPu": 9, "OrRd": 9, "YlGnBu": 9, "YlOrRd": 9,
	},
	Diverging: {
		"RdBu": 11, "RdYlBu": 11, "BrBG": 11, "PiYG": 11, "PRGn": 11,
		"PuOr": 11, "RdGy": 11, "Spectral": 11, "RdYlGn": 11,
	},
	Qualitative: {
		"Set1": 9, "Set2": 8, "Set3": 12, "Pastel1": 9, "Pastel2": 8,
		"Dark2": 8, "Accent": 8, "Paired": 12,
	},
}

func table(name string, kind Kind, rgba []color.RGBA) *Colormap {
	colors := make([]color.Color, len(rgba))
	for i, c := range rgba {
		colors[i] = c
	}
	return New(name, kind, colors)
}

func fromPalette(name string, kind Kind, p palette.Palette) *Colormap {
	return New(name, kind, p.Colors())
}

// fromColorMap samples a continuous gonum colormap over [0,1].
func fromColorMap(name string, kind Kind, cm palette.ColorMap) *Colormap {
	cm.SetMax(1)
	cm.SetMin(0)
	return fromPalette(name, kind, cm.Palette(64))
}

var viridis = []color.RGBA{
	{68, 1, 84, 255},
	{72, 35, 116, 255},
	{64, 67, 135, 255},
	{52, 94, 141, 255},
	{41, 120, 142, 255},
	{32, 144, 140, 255},
	{34, 167, 132, 255},
	{68, 190, 112, 255},
	{121, 209, 81, 255},
	{189, 222, 38, 255},
	{253, 231, 37, 255},
}

var plasma = []color.RGBA{
	{13, 8, 135, 255},
	{75, 3, 161, 255},
	{125, 3, 168, 255},
	{168, 34, 150, 255},
	{203, 70, 121, 255},
	{229, 107, 93, 255},
	{248, 148, 65, 255},
	{253, 195, 40, 255},
	{240, 249, 33, 255},
}

var inferno = []color.RGBA{
	{0, 0, 4, 255},
	{40, 11, 84, 255},
	{101, 21, 110, 255},
	{159, 42, 99, 255},
	{212, 72, 66, 255},
	{245, 125, 21, 255},
	{250, 193, 39, 255},
	{252, 255, 164, 255},
}

var magma = []color.RGBA{
	{0, 0, 4, 255},
	{28, 16, 68, 255},
	{79, 18, 123, 255},
	{129, 37, 129, 255},
	{181, 54, 122, 255},
	{229, 80, 100, 255},
	{251, 135, 97, 255},
	{254, 194, 135, 255},
	{252, 253, 191, 255},
}

var tab20 = []color.RGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{127, 127, 127, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
	{174, 199, 232, 255},
	{255, 187, 120, 255},
	{152, 223, 138, 255},
	{255, 152, 150, 255},
	{197, 176, 213, 255},
	{196, 156, 148, 255},
	{247, 182, 210, 255},
	{199, 199, 199, 255},
	{219, 219, 141, 255},
	{158, 218, 229, 255},
}

package cmap

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ParseColor converts an SVG color name like "steelblue" or a hex
// string like "#4682b4" to a color.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "none", "transparent":
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return nil, errors.Errorf("cmap: invalid color %q", s)
	}
	return c, nil
}

// ParseColors converts each of names with ParseColor.
func ParseColors(names ...string) ([]color.Color, error) {
	colors := make([]color.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

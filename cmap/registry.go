package cmap

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrUnknown is returned by Lookup for unregistered names.
var ErrUnknown = errors.New("cmap: unknown colormap")

var (
	mu       sync.RWMutex
	registry = map[string]*Colormap{}
)

// Register adds c to the registry under its lower-cased name, replacing
// a colormap of the same name.
func Register(c *Colormap) {
	mu.Lock()
	registry[strings.ToLower(c.Name)] = c.Copy()
	mu.Unlock()
}

// Names returns the sorted names of all registered colormaps.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named colormap. The name is matched case
// insensitively and may carry the suffixes "_r" (reversed), "_s"
// (shifted by 180 degrees) and "_copy".
func Lookup(name string) (*Colormap, error) {
	base := strings.ToLower(strings.TrimLeft(name, "_"))
	var reverse, shift bool
	for {
		switch {
		case strings.HasSuffix(base, "_r"):
			reverse = !reverse
			base = strings.TrimSuffix(base, "_r")
			continue
		case strings.HasSuffix(base, "_s"):
			shift = !shift
			base = strings.TrimSuffix(base, "_s")
			continue
		case strings.HasSuffix(base, "_copy"):
			base = strings.TrimSuffix(base, "_copy")
			continue
		}
		break
	}

	mu.RLock()
	c, ok := registry[base]
	mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknown, "%q", name)
	}
	c = c.Copy()
	if shift {
		c = c.Shifted()
	}
	if reverse {
		c = c.Reversed()
	}
	return c, nil
}

var suffixRE = regexp.MustCompile(`\A_*(.*?)(?:_r|_s|_copy)*\z`)

// BaseName strips leading underscores and the "_r", "_s" and "_copy"
// suffixes from a lower-cased colormap name.
func BaseName(name string) string {
	return suffixRE.ReplaceAllString(strings.ToLower(name), "$1")
}

// IsDiverging reports whether name refers to a registered diverging
// colormap.
func IsDiverging(name string) bool {
	mu.RLock()
	c, ok := registry[BaseName(name)]
	mu.RUnlock()
	return ok && c.Kind == Diverging
}

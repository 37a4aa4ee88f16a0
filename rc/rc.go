// Package rc holds the configuration registry with the defaults used by
// the color scale and error range resolvers.
//
// The resolvers never consult a hidden global: they take a *Config
// argument and fall back to Global only if it is nil.
package rc

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the full set of defaults.
type Config struct {
	Cmap     CmapConfig     `yaml:"cmap"`
	Image    ImageConfig    `yaml:"image"`
	Errorbar ErrorbarConfig `yaml:"errorbar"`
}

// CmapConfig contains the colormap and level defaults.
type CmapConfig struct {
	// Levels is the default number of levels.
	Levels int `yaml:"levels"`

	// Discrete is the default for discretizing colormaps. If nil the
	// plotting command decides.
	Discrete *bool `yaml:"discrete"`

	// Robust turns on percentile trimming of data limits.
	Robust bool `yaml:"robust"`

	// RobustWidth is the central percentile width used if Robust is on.
	RobustWidth float64 `yaml:"robust_width"`

	Inbounds      *bool `yaml:"inbounds"`
	AutoDiverging *bool `yaml:"autodiverging"`

	// Default colormap names per colormap kind.
	Sequential  string `yaml:"sequential"`
	Diverging   string `yaml:"diverging"`
	Cyclic      string `yaml:"cyclic"`
	Qualitative string `yaml:"qualitative"`

	// LUT is the number of colors continuous colormaps are sampled with.
	LUT int `yaml:"lut"`
}

// ImageConfig contains the fallback colormap.
type ImageConfig struct {
	Cmap string `yaml:"cmap"`
}

// ErrorbarConfig contains the styling defaults of error indicators.
type ErrorbarConfig struct {
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"linewidth"`
	CapSize   float64 `yaml:"capsize"`
	Alpha     float64 `yaml:"alpha"`
	ZOrder    float64 `yaml:"zorder"`
}

// Load reads configuration from a YAML file. A missing file yields the
// default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML document and fills in missing values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cmap: CmapConfig{
			Levels:        11,
			Discrete:      nil,
			Robust:        false,
			RobustWidth:   96,
			Inbounds:      boolPtr(true),
			AutoDiverging: boolPtr(true),
			Sequential:    "viridis",
			Diverging:     "coolwarm",
			Cyclic:        "hue",
			Qualitative:   "tab10",
			LUT:           256,
		},
		Image: ImageConfig{
			Cmap: "viridis",
		},
		Errorbar: ErrorbarConfig{
			Color:     "black",
			LineWidth: 0.8,
			CapSize:   3,
			Alpha:     0.4,
			ZOrder:    2.5,
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Cmap.Levels == 0 {
		cfg.Cmap.Levels = defaults.Cmap.Levels
	}
	if cfg.Cmap.RobustWidth == 0 {
		cfg.Cmap.RobustWidth = defaults.Cmap.RobustWidth
	}
	if cfg.Cmap.Inbounds == nil {
		cfg.Cmap.Inbounds = defaults.Cmap.Inbounds
	}
	if cfg.Cmap.AutoDiverging == nil {
		cfg.Cmap.AutoDiverging = defaults.Cmap.AutoDiverging
	}
	if cfg.Cmap.Sequential == "" {
		cfg.Cmap.Sequential = defaults.Cmap.Sequential
	}
	if cfg.Cmap.Diverging == "" {
		cfg.Cmap.Diverging = defaults.Cmap.Diverging
	}
	if cfg.Cmap.Cyclic == "" {
		cfg.Cmap.Cyclic = defaults.Cmap.Cyclic
	}
	if cfg.Cmap.Qualitative == "" {
		cfg.Cmap.Qualitative = defaults.Cmap.Qualitative
	}
	if cfg.Cmap.LUT == 0 {
		cfg.Cmap.LUT = defaults.Cmap.LUT
	}
	if cfg.Image.Cmap == "" {
		cfg.Image.Cmap = defaults.Image.Cmap
	}
	if cfg.Errorbar.Color == "" {
		cfg.Errorbar.Color = defaults.Errorbar.Color
	}
	if cfg.Errorbar.LineWidth == 0 {
		cfg.Errorbar.LineWidth = defaults.Errorbar.LineWidth
	}
	if cfg.Errorbar.CapSize == 0 {
		cfg.Errorbar.CapSize = defaults.Errorbar.CapSize
	}
	if cfg.Errorbar.Alpha == 0 {
		cfg.Errorbar.Alpha = defaults.Errorbar.Alpha
	}
	if cfg.Errorbar.ZOrder == 0 {
		cfg.Errorbar.ZOrder = defaults.Errorbar.ZOrder
	}
}

// Inbounds returns the in-bounds filtering default.
func (c *Config) Inbounds() bool {
	return c.Cmap.Inbounds == nil || *c.Cmap.Inbounds
}

// AutoDiverging returns the auto-diverging default.
func (c *Config) AutoDiverging() bool {
	return c.Cmap.AutoDiverging == nil || *c.Cmap.AutoDiverging
}

func boolPtr(b bool) *bool { return &b }

var (
	mu     sync.RWMutex
	global = Default()
)

// Global returns the process-wide configuration. Callers must treat
// the result as read-only.
func Global() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetGlobal replaces the process-wide configuration. A nil cfg restores
// the defaults.
func SetGlobal(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	mu.Lock()
	global = cfg
	mu.Unlock()
}

// Or returns cfg if it is non-nil and Global otherwise.
func Or(cfg *Config) *Config {
	if cfg != nil {
		return cfg
	}
	return Global()
}

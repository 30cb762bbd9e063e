package xrpointer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStylusID is the first pointer id of the stylus block.
const DefaultStylusID = 1000

// Config holds the tunables of pointers and the input module. The zero value
// is not useful; start from DefaultConfig.
type Config struct {
	// StylusID is the first id of the stylus's three-id block.
	StylusID int `yaml:"stylus_id"`
	// PrimaryKey is the stylus button that drives logical button 0.
	PrimaryKey Button `yaml:"-"`
	// ClickTimeThreshold is the seconds within which presses count as a
	// multi-click and a release still counts as a click.
	ClickTimeThreshold float64 `yaml:"click_time_threshold"`
	// PixelDragThreshold is the screen distance a UI drag must cover.
	PixelDragThreshold float64 `yaml:"pixel_drag_threshold"`
	// RayLength bounds raycasts in world units.
	RayLength float64 `yaml:"ray_length"`
	// WorldScale converts tracker-space positions to world space.
	WorldScale float64 `yaml:"world_scale"`
	// Layers selects physics layers for 3D raycasts.
	Layers LayerMask `yaml:"-"`
	// Merge picks between world and UI hits when both have targets.
	Merge MergeRule `yaml:"-"`
	// SmoothEndpoint eases the ray endpoint over EndpointSmoothTime seconds.
	SmoothEndpoint     bool    `yaml:"smooth_endpoint"`
	EndpointSmoothTime float64 `yaml:"endpoint_smooth_time"`
	// RayHideTime hides an idle pointer's ray after this many seconds of
	// moving less than RayHideDistance. Zero disables hiding.
	RayHideTime     float64 `yaml:"ray_hide_time"`
	RayHideDistance float64 `yaml:"ray_hide_distance"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		StylusID:           DefaultStylusID,
		PrimaryKey:         ButtonMiddle,
		ClickTimeThreshold: 0.3,
		PixelDragThreshold: defaultPixelDragThreshold,
		RayLength:          1,
		WorldScale:         1,
		Layers:             AllLayers,
		Merge:              MergeOcclusion,
		EndpointSmoothTime: 0.02,
		RayHideDistance:    0.05,
	}
}

// fileConfig mirrors Config with the fields that need string or list forms
// in YAML.
type fileConfig struct {
	Config     `yaml:",inline"`
	PrimaryKey string `yaml:"primary_key"`
	MergeRule  string `yaml:"merge_rule"`
	Layers     []int  `yaml:"layers"`
}

// LoadConfig reads a YAML config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return LoadConfigOver(path, DefaultConfig())
}

// LoadConfigOver reads a YAML config file over base, so fields the file sets
// win and the rest keep base's values. A missing file yields base.
func LoadConfigOver(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfigOver(data, base)
}

// ParseConfig parses YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	return ParseConfigOver(data, DefaultConfig())
}

// ParseConfigOver parses YAML over base and validates the result.
func ParseConfigOver(data []byte, base Config) (Config, error) {
	fc := fileConfig{Config: base}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := fc.Config

	if fc.PrimaryKey != "" {
		b, err := ParseButton(fc.PrimaryKey)
		if err != nil {
			return Config{}, err
		}
		cfg.PrimaryKey = b
	}
	if fc.MergeRule != "" {
		rule, err := ParseMergeRule(fc.MergeRule)
		if err != nil {
			return Config{}, err
		}
		cfg.Merge = rule
	}
	if fc.Layers != nil {
		var mask LayerMask
		for _, l := range fc.Layers {
			if l < 0 || l > 31 {
				return Config{}, fmt.Errorf("%w: layer %d out of range 0-31", ErrInvalidConfig, l)
			}
			mask |= 1 << uint(l)
		}
		cfg.Layers = mask
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.StylusID < 0:
		return fmt.Errorf("%w: stylus_id must not be negative", ErrInvalidConfig)
	case c.PrimaryKey >= MaxButtons:
		return fmt.Errorf("%w: primary key %d", ErrInvalidConfig, c.PrimaryKey)
	case c.ClickTimeThreshold < 0:
		return fmt.Errorf("%w: click_time_threshold must not be negative", ErrInvalidConfig)
	case c.PixelDragThreshold < 0:
		return fmt.Errorf("%w: pixel_drag_threshold must not be negative", ErrInvalidConfig)
	case c.RayLength <= 0:
		return fmt.Errorf("%w: ray_length must be positive", ErrInvalidConfig)
	case c.WorldScale <= 0:
		return fmt.Errorf("%w: world_scale must be positive", ErrInvalidConfig)
	case c.EndpointSmoothTime < 0:
		return fmt.Errorf("%w: endpoint_smooth_time must not be negative", ErrInvalidConfig)
	case c.RayHideTime < 0 || c.RayHideDistance < 0:
		return fmt.Errorf("%w: ray hide settings must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ParseButton parses "left", "right" or "middle".
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	}
	return 0, fmt.Errorf("%w: unknown button %q", ErrInvalidConfig, s)
}

// ParseMergeRule parses "occlusion" or "prefer_world".
func ParseMergeRule(s string) (MergeRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "occlusion":
		return MergeOcclusion, nil
	case "prefer_world", "prefer-world":
		return MergePreferWorld, nil
	}
	return nil, fmt.Errorf("%w: unknown merge rule %q", ErrInvalidConfig, s)
}

// Configure applies the resolver settings of cfg to r.
func (r *Resolver) Configure(cfg Config) {
	r.Layers = cfg.Layers
	r.Rule = cfg.Merge
}

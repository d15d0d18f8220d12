package layout

import "sync/atomic"

// Config holds tunables shared by every node that references it.
// Any change to a stored value bumps the version, which invalidates cached
// layouts of nodes using the config.
type Config struct {
	useWebDefaults       bool
	pointScaleFactor     float32
	experimentalFeatures uint32
	errata               Errata
	version              uint32

	adopted atomic.Bool
}

var defaultConfig = NewConfig()

// DefaultConfig returns the config used by NewNode.
func DefaultConfig() *Config {
	return defaultConfig
}

// NewConfig returns a config with a point scale factor of 1 and no errata.
func NewConfig() *Config {
	return &Config{pointScaleFactor: 1}
}

// UseWebDefaults reports whether nodes created with this config start from
// CSS defaults (row direction, stretch align-content, shrink 1).
func (c *Config) UseWebDefaults() bool {
	return c.useWebDefaults
}

// SetUseWebDefaults toggles CSS defaults. It panics once a node has been
// created with the config.
func (c *Config) SetUseWebDefaults(enabled bool) {
	assertf(!c.adopted.Load(), "UseWebDefaults may not be changed after a node has adopted the config")
	if c.useWebDefaults != enabled {
		c.useWebDefaults = enabled
		c.version++
	}
}

// PointScaleFactor returns the number of physical pixels per point.
func (c *Config) PointScaleFactor() float32 {
	return c.pointScaleFactor
}

// SetPointScaleFactor sets the pixel grid used for rounding. Zero disables
// rounding. Negative factors panic.
func (c *Config) SetPointScaleFactor(factor float32) {
	assertf(factor >= 0, "scale factor should not be less than zero, got %v", factor)
	if c.pointScaleFactor != factor {
		c.pointScaleFactor = factor
		c.version++
	}
}

// Errata returns the enabled legacy behaviors.
func (c *Config) Errata() Errata {
	return c.errata
}

// SetErrata replaces the enabled legacy behaviors.
func (c *Config) SetErrata(errata Errata) {
	if c.errata != errata {
		c.errata = errata
		c.version++
	}
}

// AddErrata enables legacy behaviors in addition to the current ones.
func (c *Config) AddErrata(errata Errata) {
	c.SetErrata(c.errata | errata)
}

// RemoveErrata disables the given legacy behaviors.
func (c *Config) RemoveErrata(errata Errata) {
	c.SetErrata(c.errata &^ errata)
}

// HasErrata reports whether any of the given legacy behaviors is enabled.
func (c *Config) HasErrata(errata Errata) bool {
	return c.errata&errata != 0
}

// SetExperimentalFeatureEnabled toggles an experimental feature.
func (c *Config) SetExperimentalFeatureEnabled(feature ExperimentalFeature, enabled bool) {
	bit := uint32(1) << feature
	next := c.experimentalFeatures &^ bit
	if enabled {
		next |= bit
	}
	if next != c.experimentalFeatures {
		c.experimentalFeatures = next
		c.version++
	}
}

// IsExperimentalFeatureEnabled reports whether a feature is on.
func (c *Config) IsExperimentalFeatureEnabled(feature ExperimentalFeature) bool {
	return c.experimentalFeatures&(uint32(1)<<feature) != 0
}

// Version increases every time a stored value changes.
func (c *Config) Version() uint32 {
	return c.version
}

func (c *Config) adopt() {
	c.adopted.Store(true)
}

// layoutEquivalent reports whether swapping a for b can keep cached layouts.
func layoutEquivalent(a, b *Config) bool {
	return a.errata == b.errata &&
		a.experimentalFeatures == b.experimentalFeatures &&
		a.pointScaleFactor == b.pointScaleFactor &&
		a.useWebDefaults == b.useWebDefaults
}

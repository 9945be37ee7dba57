package config

// Presets are named sweep scenarios. Each starts from the defaults and
// overrides a handful of fields.
var Presets = map[string]*Config{
	// Baseline of the memory relation figure.
	"fiducial": DefaultConfig(),
	// Fully anisotropic ejecta: the theoretical maximum signal.
	"max_anisotropy": presetWith(func(c *Config) {
		c.Epsilon = 1.0
	}),
	// A galactic-neighborhood event at ~1 Mpc.
	"nearby": presetWith(func(c *Config) {
		c.Distance = 3.1e24
	}),
	// Weakly bound ejecta at 0.03c.
	"slow_ejecta": presetWith(func(c *Config) {
		c.VEj = 0.03 * 2.9979e10
	}),
	// Extended decade range, asteroid-mass through lunar-mass PBHs.
	"wide_band": presetWith(func(c *Config) {
		c.MassLowExp = 18
		c.MassHighExp = 27
		c.GridCount = 360
	}),
}

func presetWith(mutate func(*Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil if unknown.
// Callers may mutate the copy freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

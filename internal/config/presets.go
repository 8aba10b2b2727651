package config

import "sort"

var Presets = map[string]*Config{
	"small": {
		Size: 10, Min: 0, Max: 20, FPS: 10,
		Algorithm: "bubble", Direction: "ascending", Theme: "classic",
	},
	"default": DefaultConfig(),
	"large": {
		Size: 120, Min: 0, Max: 500, FPS: 240,
		Algorithm: "insertion", Direction: "ascending", Theme: "ocean",
	},
	"duplicates": {
		Size: 40, Min: 1, Max: 5, FPS: 60,
		Algorithm: "insertion", Direction: "descending", Theme: "retro",
	},
	"fast": {
		Size: 50, Min: 0, Max: 100, FPS: 120,
		Algorithm: "bubble", Direction: "descending", Theme: "cyberpunk",
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import "sort"

// Presets mirror the small, medium and large maze buttons; all draw onto a
// 500px square.
var Presets = map[string]*Config{
	"small": {
		Rows: 10, Cols: 10, Size: 500, Source: DefaultSource,
		FPS: DefaultFPS, StepsPerFrame: 1, Theme: DefaultTheme,
	},
	"medium": {
		Rows: 15, Cols: 15, Size: 500, Source: DefaultSource,
		FPS: DefaultFPS, StepsPerFrame: 1, Theme: DefaultTheme,
	},
	"large": {
		Rows: 25, Cols: 25, Size: 500, Source: DefaultSource,
		FPS: DefaultFPS, StepsPerFrame: 2, Theme: DefaultTheme,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import "sort"

var Presets = map[string]*Config{
	"glider": {
		Width: 40, Height: 20, Pattern: "glider",
		Seed: -1, Epochs: 320, IntervalMs: 100,
	},
	"blinker": {
		Width: 9, Height: 9, Pattern: "blinker", OffsetX: 3, OffsetY: 4,
		Seed: -1, Epochs: 30, IntervalMs: 250,
	},
	"pulsar": {
		Width: 20, Height: 20, Pattern: "pulsar",
		Seed: -1, Epochs: 90, IntervalMs: 150,
	},
	"gun": {
		Width: 70, Height: 30, Pattern: "gosper-gun",
		Seed: -1, Epochs: 400, IntervalMs: 100,
	},
	"soup": {
		Width: 70, Height: 30, Probability: 0.2,
		Seed: -1, Epochs: 500, IntervalMs: 80,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

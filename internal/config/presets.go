package config

// Presets are ready-made configurations per mode, keyed by preset name.
var Presets = map[string]map[string]*Config{
	"life": {
		"glider": {
			Mode: "life", Width: 60, Height: 40, Pattern: "glider",
		},
		"gun": {
			Mode: "life", Width: 80, Height: 50, Pattern: "glider-gun",
		},
		"soup": {
			Mode: "life", Width: 100, Height: 100, Pattern: "soup",
		},
		"methuselah": {
			Mode: "life", Width: 120, Height: 120, Pattern: "r-pentomino",
		},
	},
	"highlife": {
		"replicator": {
			Mode: "highlife", Width: 80, Height: 80, Pattern: "replicator",
		},
	},
	"custom": {
		"daynight": {
			Mode: "custom", Width: 100, Height: 100, Rule: "B3678/S34678", Pattern: "soup",
		},
		"seeds": {
			Mode: "custom", Width: 100, Height: 100, Rule: "B2/S", Pattern: "soup",
		},
	},
	"brain": {
		"soup": {
			Mode: "brain", Width: 120, Height: 80, Pattern: "soup",
		},
	},
	"generations": {
		"starwars": {
			Mode: "generations", Width: 120, Height: 80, States: 4,
			Rule: "B2/S345", Pattern: "soup",
		},
	},
	"immigration": {
		"mix": {
			Mode: "immigration", Width: 100, Height: 80, Pattern: "color-mix",
		},
	},
	"rainbow": {
		"mix": {
			Mode: "rainbow", Width: 100, Height: 80, Pattern: "rainbow-mix",
		},
	},
	"ant": {
		"highway": {
			Mode: "ant", Width: 100, Height: 100,
		},
	},
	"hexlife": {
		"soup": {
			Mode: "hexlife", Width: 100, Height: 80, Pattern: "soup",
		},
	},
}

// GetPreset returns the preset config, or nil when absent. Fields left
// zero in the preset fall back to defaults when applied.
func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	return modePresets[preset]
}

// ListPresets returns the preset names for a mode.
func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	return names
}

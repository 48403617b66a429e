package config

// Presets are ready-made render configs per figure kind, for the common
// publication setups.
var Presets = map[string]map[string]*Config{
	"gridmap": {
		"anomaly": {
			Kind: "gridmap", Divergent: true, Levels: 10,
			Coastlines: true, Style: []string{"climplot"}, Legend: "none",
		},
		"paper": {
			Kind: "gridmap", Levels: 8, Coastlines: true,
			Style: []string{"climplot", "paper"}, Legend: "none",
		},
		"poster": {
			Kind: "gridmap", Levels: 6, Coastlines: true,
			Style: []string{"climplot", "poster"}, Legend: "none",
		},
	},
	"timeseries": {
		"scenarios": {
			Kind: "timeseries", Legend: "full", Style: []string{"climplot"},
		},
		"paper": {
			Kind: "timeseries", Legend: "lines", Style: []string{"climplot", "paper"},
		},
	},
	"stripes": {
		"classic": {
			Kind: "stripes", Cmap: "temp_div", Legend: "none",
			Style: []string{"climplot"},
		},
	},
	"heatmap": {
		"annotated": {
			Kind: "heatmap", Annot: true, Legend: "none",
			Style: []string{"climplot"},
		},
	},
}

func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	cfg, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	return names
}

package cmaps

import (
	_ "embed"
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/categorical_colors.yaml
var categoricalYAML []byte

// categorical maps scenario/model substrings ("SSP2-4.5", "RCP8.5",
// "CMIP6") to 0-255 RGB triples, per the IPCC AR6 scheme. File order is
// kept: the first matching entry wins in ScenColor.
type scenEntry struct {
	key string
	rgb [3]uint8
}

var categorical = func() []scenEntry {
	var doc yaml.Node
	if err := yaml.Unmarshal(categoricalYAML, &doc); err != nil {
		panic(fmt.Sprintf("cmaps: bad embedded categorical color table: %v", err))
	}
	root := doc.Content[0]
	out := make([]scenEntry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var rgb []uint8
		if err := root.Content[i+1].Decode(&rgb); err != nil || len(rgb) != 3 {
			panic(fmt.Sprintf("cmaps: categorical color %q wants 3 components", root.Content[i].Value))
		}
		out = append(out, scenEntry{key: root.Content[i].Value, rgb: [3]uint8{rgb[0], rgb[1], rgb[2]}})
	}
	return out
}()

var scenRe = regexp.MustCompile(`(?i)(SSP|RCP|CMIP)[0-9]{1,3}`)

// ConvertScenName rewrites compact scenario spellings to their reference
// format: ssp245 becomes SSP2-4.5, rcp45 RCP4.5, cmip5 CMIP5. Strings
// without a scenario substring pass through unchanged.
func ConvertScenName(name string) string {
	return scenRe.ReplaceAllStringFunc(name, func(s string) string {
		up := strings.ToUpper(s)
		digits := 0
		for _, c := range up {
			if c >= '0' && c <= '9' {
				digits++
			}
		}
		n := len(up)
		switch digits {
		case 3:
			return up[:n-3] + string(up[n-3]) + "-" + string(up[n-2]) + "." + string(up[n-1])
		case 2:
			return up[:n-2] + string(up[n-2]) + "." + string(up[n-1])
		default:
			return up
		}
	})
}

// ScenColor finds the categorical color whose key is a substring of the
// (converted) name. The second return is false when no entry matches.
func ScenColor(name string) (color.Color, bool) {
	for _, e := range categorical {
		if strings.Contains(name, e.key) {
			return color.RGBA{R: e.rgb[0], G: e.rgb[1], B: e.rgb[2], A: 255}, true
		}
	}
	return nil, false
}

// CategoricalColors returns a copy of the scenario color table.
func CategoricalColors() map[string]color.Color {
	out := make(map[string]color.Color, len(categorical))
	for _, e := range categorical {
		out[e.key] = color.RGBA{R: e.rgb[0], G: e.rgb[1], B: e.rgb[2], A: 255}
	}
	return out
}

package figure

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/plot"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/internal/text"
)

// UseAttrs maps text slots on a figure to the metadata attribute that
// supplies them. Recognized slots: "title", "suptitle", "xlabel",
// "xunits", "ylabel", "yunits", "cbar_label", "cbar_units". An empty
// value clears the slot.
type UseAttrs map[string]string

func defaultLineAttrs() UseAttrs {
	return UseAttrs{
		"title":  "description",
		"ylabel": "long_name",
		"yunits": "units",
	}
}

func defaultMapAttrs() UseAttrs {
	return UseAttrs{
		"title":      "description",
		"cbar_label": "long_name",
		"cbar_units": "units",
	}
}

// merge overlays user entries onto the defaults.
func (ua UseAttrs) merge(over UseAttrs) UseAttrs {
	out := make(UseAttrs, len(ua)+len(over))
	for k, v := range ua {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// attrText looks up a metadata attribute on the array, preferring the
// locale-suffixed variant ("description_fr") when a non-English locale is
// active. Missing attributes resolve to the empty string.
func attrText(obj array.Obj, attrName string) string {
	if obj == nil || attrName == "" {
		return ""
	}
	if lang := locale.Current(); lang != "en" {
		if v, ok := obj.Attr(attrName + "_" + lang); ok {
			return v
		}
	}
	v, ok := obj.Attr(attrName)
	if !ok {
		slog.Debug("attribute not found", "attr", attrName)
	}
	return v
}

// labelWithUnits appends units to a label when they carry information.
func labelWithUnits(label, units string) string {
	if units == "" || units == "1" {
		return label
	}
	if label == "" {
		return "(" + units + ")"
	}
	return label + " (" + units + ")"
}

// applyAttrs fills the title and axis labels of a plot from the array's
// metadata, wrapping long titles.
func applyAttrs(p *plot.Plot, obj array.Obj, ua UseAttrs) {
	if title := attrText(obj, ua["title"]); title != "" {
		p.Title.Text = text.Wrap(title, 35, 44)
	}
	xl := attrText(obj, ua["xlabel"])
	if xu := attrText(obj, ua["xunits"]); xu != "" {
		xl = labelWithUnits(xl, xu)
	}
	if xl != "" {
		p.X.Label.Text = xl
	}
	yl := attrText(obj, ua["ylabel"])
	if yu := attrText(obj, ua["yunits"]); yu != "" {
		yl = labelWithUnits(yl, yu)
	}
	if yl != "" {
		p.Y.Label.Text = yl
	}
}

// cbarLabel builds the colorbar label from the array's metadata.
func cbarLabel(obj array.Obj, ua UseAttrs) string {
	return labelWithUnits(attrText(obj, ua["cbar_label"]), attrText(obj, ua["cbar_units"]))
}

// locationText formats the lat/lon annotation for point data, reading
// scalar coordinates when present.
func locationText(da *array.DataArray) string {
	lat, latOK := scalarCoord(da, "lat")
	lon, lonOK := scalarCoord(da, "lon")
	if !latOK || !lonOK {
		return ""
	}
	return fmt.Sprintf("lat=%.2f, lon=%.2f", lat, lon)
}

func scalarCoord(da *array.DataArray, name string) (float64, bool) {
	if da == nil {
		return 0, false
	}
	c := da.Coord(name)
	if len(c) != 1 {
		return 0, false
	}
	return c[0], true
}

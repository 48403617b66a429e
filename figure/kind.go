package figure

import "github.com/mbeaupre/climplot/array"

// InferKind guesses the figure kind from the data shape: lat/lon grids
// become maps, 1-D series and ensembles become timeseries, station
// points a scatter map, anything else a heatmap.
func InferKind(obj array.Obj) string {
	da := firstArray(obj)
	if da == nil {
		return "heatmap"
	}
	da = da.Squeeze()
	if da.HasDim("lat") && da.HasDim("lon") && da.DimLen("lat") > 1 && da.DimLen("lon") > 1 {
		return "gridmap"
	}
	if da.NDim() == 1 {
		if !da.HasDim("time") &&
			len(da.Coord("lat")) == da.Len() && len(da.Coord("lon")) == da.Len() {
			return "scattermap"
		}
		return "timeseries"
	}
	if cat, err := Categorize(obj); err == nil && cat.IsEnsemble() {
		return "timeseries"
	}
	return "heatmap"
}

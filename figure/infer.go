// Package figure renders labeled climate arrays into styled figures. The
// entry points (Timeseries, GridMap, Stripes, ...) accept a single array,
// a dataset or an ordered map of either, inspect dimension names and
// variable naming conventions to decide how to draw each entry, and
// delegate the rendering to gonum/plot.
package figure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/internal/locale"
)

// Category describes how an array should be drawn.
type Category int

const (
	// CatDA is a plain DataArray: one line.
	CatDA Category = iota
	// CatDS is a plain Dataset: one line per variable.
	CatDS
	// CatEnsPctVarsDS is a Dataset with percentiles stored as variables
	// (tas_p10, tas_p50, tas_p90): central line plus shaded band.
	CatEnsPctVarsDS
	// CatEnsStatsVarsDS is a Dataset with min/mean/max variables.
	CatEnsStatsVarsDS
	// CatEnsPctDimDS is a Dataset with a "percentiles" dimension.
	CatEnsPctDimDS
	// CatEnsPctDimDA is a DataArray with a "percentiles" dimension.
	CatEnsPctDimDA
	// CatEnsRealsDS is a Dataset with a "realization" dimension.
	CatEnsRealsDS
	// CatEnsRealsDA is a DataArray with a "realization" dimension.
	CatEnsRealsDA
)

func (c Category) String() string {
	switch c {
	case CatDA:
		return "DA"
	case CatDS:
		return "DS"
	case CatEnsPctVarsDS:
		return "ENS_PCT_VAR_DS"
	case CatEnsStatsVarsDS:
		return "ENS_STATS_VAR_DS"
	case CatEnsPctDimDS:
		return "ENS_PCT_DIM_DS"
	case CatEnsPctDimDA:
		return "ENS_PCT_DIM_DA"
	case CatEnsRealsDS:
		return "ENS_REALS_DS"
	case CatEnsRealsDA:
		return "ENS_REALS_DA"
	}
	return "unknown"
}

var (
	pctVarRe   = regexp.MustCompile(`_p[0-9]{1,2}`)
	statVarRe  = regexp.MustCompile(`_[Mm]ax|_[Mm]in`)
	suffixRe   = regexp.MustCompile(`[0-9]{1,2}$|[Mm]ax$|[Mm]in$|[Mm]ean$`)
	fullSuffRe = regexp.MustCompile(`[0-9]{1,2}$|_[Mm]ax$|_[Mm]in$|_[Mm]ean$`)
)

// Categorize determines the category of a labeled array from its dimension
// names and variable naming conventions.
func Categorize(obj array.Obj) (Category, error) {
	switch v := obj.(type) {
	case *array.Dataset:
		if countMatches(v.VarNames(), pctVarRe) >= 2 {
			return CatEnsPctVarsDS, nil
		}
		if countMatches(v.VarNames(), statVarRe) >= 2 {
			return CatEnsStatsVarsDS, nil
		}
		if v.HasDim("percentiles") {
			return CatEnsPctDimDS, nil
		}
		if v.HasDim("realization") {
			return CatEnsRealsDS, nil
		}
		return CatDS, nil
	case *array.DataArray:
		if v.HasDim("percentiles") {
			return CatEnsPctDimDA, nil
		}
		if v.HasDim("realization") {
			return CatEnsRealsDA, nil
		}
		return CatDA, nil
	default:
		return CatDA, fmt.Errorf("figure: %T is not a DataArray or Dataset", obj)
	}
}

func countMatches(names []string, re *regexp.Regexp) int {
	n := 0
	for _, name := range names {
		if re.MatchString(name) {
			n++
		}
	}
	return n
}

// IsEnsemble reports whether a category is drawn as a band or realization
// bundle rather than plain lines.
func (c Category) IsEnsemble() bool {
	return c != CatDA && c != CatDS
}

// isPctCategory reports categories whose band label names percentiles.
func (c Category) isPct() bool {
	return c == CatEnsPctVarsDS || c == CatEnsPctDimDS || c == CatEnsPctDimDA
}

// suffixOf extracts the trailing statistic marker of an ensemble variable
// name: "tas_p50" gives "50", "tas_max" gives "max".
func suffixOf(name string) (string, error) {
	if !fullSuffRe.MatchString(name) {
		return "", fmt.Errorf("figure: mean, min, max or percentile suffix not found in %q", name)
	}
	return suffixRe.FindString(name), nil
}

// sortLines labels exactly three ensemble member names as middle, upper
// and lower. Statistic suffixes map directly; percentile suffixes split at
// 50 (>=51 upper, <=49 lower).
func sortLines(names []string) (middle, upper, lower string, err error) {
	if len(names) != 3 {
		return "", "", "", fmt.Errorf("figure: ensembles must contain exactly three arrays, got %d", len(names))
	}
	for _, name := range names {
		suffix, err := suffixOf(name)
		if err != nil {
			return "", "", "", err
		}
		if n, numErr := strconv.Atoi(suffix); numErr == nil {
			switch {
			case n >= 51:
				upper = name
			case n <= 49:
				lower = name
			default:
				middle = name
			}
			continue
		}
		switch strings.ToLower(suffix) {
		case "max":
			upper = name
		case "min":
			lower = name
		case "mean":
			middle = name
		}
	}
	if middle == "" || upper == "" || lower == "" {
		return "", "", "", fmt.Errorf("figure: could not sort %v into middle, upper and lower", names)
	}
	return middle, upper, lower, nil
}

// bandLabel builds the legend label of the shading around an ensemble
// line; only the "full" legend mode labels bands.
func bandLabel(cat Category, legend string, upper, lower string) string {
	if legend != LegendFull {
		return ""
	}
	if cat.isPct() {
		lo, errLo := suffixOf(lower)
		hi, errHi := suffixOf(upper)
		if errLo != nil || errHi != nil {
			return ""
		}
		return fmt.Sprintf(locale.Term("%sth-%sth percentiles"), lo, hi)
	}
	if cat == CatEnsStatsVarsDS {
		return locale.Term("min-max range")
	}
	return ""
}

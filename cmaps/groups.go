package cmaps

import (
	_ "embed"
	"fmt"
	"log/slog"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mbeaupre/climplot/array"
)

//go:embed data/variable_groups.yaml
var variableGroupsYAML []byte

// variableGroups maps variable-name keywords to their colormap group.
var variableGroups = func() map[string]string {
	var m map[string]string
	if err := yaml.Unmarshal(variableGroupsYAML, &m); err != nil {
		panic(fmt.Sprintf("cmaps: bad embedded variable group table: %v", err))
	}
	return m
}()

// VarGroupOf matches a labeled array against the variable-group table: the
// variable name is searched first, then its "history" attribute. For a
// Dataset the first variable is used. No match, or more than one distinct
// group, falls back to "misc" with a warning.
func VarGroupOf(obj array.Obj) string {
	var da *array.DataArray
	switch v := obj.(type) {
	case *array.DataArray:
		da = v
	case *array.Dataset:
		da = v.First()
	}
	if da == nil {
		slog.Warn("variable group not found, using misc; pass an explicit colormap")
		return "misc"
	}

	if g, n := matchGroups(da.Name); n == 1 {
		return g
	} else if n > 1 {
		slog.Warn("more than one variable group found, using misc; pass an explicit colormap", "name", da.Name)
		return "misc"
	}

	if hist, ok := da.Attrs["history"]; ok {
		if g, n := matchGroups(hist); n == 1 {
			return g
		} else if n > 1 {
			slog.Warn("more than one variable group found in history, using misc; pass an explicit colormap", "name", da.Name)
			return "misc"
		}
	}

	slog.Warn("variable group not found, using misc; pass an explicit colormap", "name", da.Name)
	return "misc"
}

// VarGroup matches a bare string against the variable-group table.
func VarGroup(s string) string {
	g, n := matchGroups(s)
	switch {
	case n == 1:
		return g
	case n > 1:
		slog.Warn("more than one variable group found, using misc; pass an explicit colormap", "string", s)
	default:
		slog.Warn("variable group not found, using misc; pass an explicit colormap", "string", s)
	}
	return "misc"
}

// matchGroups returns one matched group and the count of distinct groups
// matched. A keyword only matches when not embedded in a longer word, so
// "tas" matches "tas_p50" and "histogram of tas" but not "tasty".
func matchGroups(s string) (string, int) {
	found := map[string]bool{}
	var last string
	for kw, group := range variableGroups {
		re := regexp.MustCompile(`(?:^|[^a-zA-Z])(` + regexp.QuoteMeta(kw) + `)(?:[^a-zA-Z]|$)`)
		if re.MatchString(s) {
			found[group] = true
			last = group
		}
	}
	return last, len(found)
}

// Groups lists the distinct variable groups of the table, sorted.
func Groups() []string {
	set := map[string]bool{}
	for _, g := range variableGroups {
		set[g] = true
	}
	out := make([]string, 0, len(set))
	for g := range set {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

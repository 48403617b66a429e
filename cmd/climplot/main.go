package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/cmaps"
	"github.com/mbeaupre/climplot/figure"
	"github.com/mbeaupre/climplot/internal/config"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/internal/tui"
	"github.com/mbeaupre/climplot/logos"
	"github.com/mbeaupre/climplot/preview"
	"github.com/mbeaupre/climplot/style"
)

var (
	varName    string
	kind       string
	cmapName   string
	divergent  bool
	center     float64
	levels     int
	styleNames []string
	legend     string
	lang       string
	out        string
	coastlines bool
	showTime   string
	annot      bool
	divide     float64
	logoName   string
	logoLoc    string
	logoScale  float64
	configFile string
	presetName string

	// preview
	live      bool
	themeName string
	width     int
	height    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "climplot",
		Short: "climate figures from NetCDF data",
	}

	renderCmd := &cobra.Command{
		Use:   "render [file.nc]",
		Short: "render a figure from a dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFigure,
	}
	renderCmd.Flags().StringVar(&varName, "var", "", "variable to plot (default: whole dataset)")
	renderCmd.Flags().StringVar(&kind, "kind", "auto", "figure kind (auto|timeseries|gridmap|stripes|heatmap|scattermap|violin)")
	renderCmd.Flags().StringVar(&cmapName, "cmap", "", "colormap name")
	renderCmd.Flags().BoolVar(&divergent, "divergent", false, "divergent color scale")
	renderCmd.Flags().Float64Var(&center, "center", 0, "center of a divergent scale")
	renderCmd.Flags().IntVar(&levels, "levels", 0, "discrete color levels")
	renderCmd.Flags().StringSliceVar(&styleNames, "style", nil, "stylesheets to apply in order")
	renderCmd.Flags().StringVar(&legend, "legend", "", "legend mode (none|lines|full|edge|in_plot)")
	renderCmd.Flags().StringVar(&lang, "locale", "", "locale for fixed terms (en, fr)")
	renderCmd.Flags().StringVar(&out, "out", "", "output file (.png, .svg or .pdf)")
	renderCmd.Flags().BoolVar(&coastlines, "coastlines", false, "overlay coastlines on maps")
	renderCmd.Flags().StringVar(&showTime, "show-time", "", "anchor for the time annotation on maps")
	renderCmd.Flags().BoolVar(&annot, "annot", false, "write values in heatmap cells")
	renderCmd.Flags().Float64Var(&divide, "divide", 0, "divider year for stripes")
	renderCmd.Flags().StringVar(&logoName, "logo", "", "logo from the store to stamp")
	renderCmd.Flags().StringVar(&logoLoc, "logo-loc", "lower right", "logo anchor location")
	renderCmd.Flags().Float64Var(&logoScale, "logo-scale", 0.08, "logo height as figure fraction")
	renderCmd.Flags().StringVar(&configFile, "config", "", "render config file (yaml)")
	renderCmd.Flags().StringVar(&presetName, "preset", "", "use a preset configuration")

	previewCmd := &cobra.Command{
		Use:   "preview [file.nc]",
		Short: "preview a dataset in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  previewDataset,
	}
	previewCmd.Flags().StringVar(&varName, "var", "", "variable to preview")
	previewCmd.Flags().BoolVar(&live, "live", false, "interactive variable browser")
	previewCmd.Flags().StringVar(&themeName, "theme", "default", "preview theme")
	previewCmd.Flags().IntVar(&width, "width", 80, "preview width")
	previewCmd.Flags().IntVar(&height, "height", 10, "preview height")

	cmapsCmd := &cobra.Command{
		Use:   "cmaps",
		Short: "inspect the colormap catalogue",
	}
	cmapsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list colormap names",
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range cmaps.Names() {
					fmt.Println(name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show [name]",
			Short: "render a colormap swatch",
			Args:  cobra.ExactArgs(1),
			RunE:  showCmap,
		},
	)

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "inspect and compose stylesheets",
	}
	stylesCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list the embedded stylesheets",
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range style.List() {
					fmt.Println(name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set [name...]",
			Short: "overlay sheets in order and print the effective style",
			Long: "Overlays the named sheets (embedded names or .yaml paths) onto the\n" +
				"defaults and prints the result, ready to save as a custom sheet.",
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := style.Reset(args...); err != nil {
					return err
				}
				raw, err := yaml.Marshal(style.Current())
				if err != nil {
					return err
				}
				fmt.Print(string(raw))
				return nil
			},
		},
	)

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list render presets for a figure kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for kind: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, previewCmd, cmapsCmd, stylesCmd, presetsCmd, logosCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig resolves the render config: preset, then file, then flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		p := config.GetPreset(kind, presetName)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for kind %q", presetName, kind)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// explicit flags win over preset and file
	set := cmd.Flags().Changed
	if set("var") {
		cfg.Var = varName
	}
	if set("kind") {
		cfg.Kind = kind
	}
	if set("cmap") {
		cfg.Cmap = cmapName
	}
	if set("divergent") {
		cfg.Divergent = divergent
	}
	if set("center") {
		cfg.Center = center
	}
	if set("levels") {
		cfg.Levels = levels
	}
	if set("style") {
		cfg.Style = styleNames
	}
	if set("legend") {
		cfg.Legend = legend
	}
	if set("locale") {
		cfg.Locale = lang
	}
	if set("out") {
		cfg.Out = out
	}
	if set("coastlines") {
		cfg.Coastlines = coastlines
	}
	if set("show-time") {
		cfg.ShowTime = showTime
	}
	if set("annot") {
		cfg.Annot = annot
	}
	if set("divide") {
		cfg.Divide = divide
	}
	if set("logo") {
		cfg.Logo.Name = logoName
	}
	if set("logo-loc") {
		cfg.Logo.Loc = logoLoc
	}
	if set("logo-scale") {
		cfg.Logo.Scale = logoScale
	}
	return cfg, cfg.Validate()
}

func renderFigure(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ds, err := array.LoadDataset(args[0])
	if err != nil {
		return err
	}
	obj, label, err := selectData(ds, cfg.Var, args[0])
	if err != nil {
		return err
	}

	if cfg.Locale != "" {
		locale.Set(cfg.Locale)
	}
	if err := style.Reset(cfg.Style...); err != nil {
		return err
	}

	k := cfg.Kind
	if k == "auto" {
		k = figure.InferKind(obj)
	}

	mapOpts := figure.MapOpts{
		UseAttrs:   figure.UseAttrs(cfg.Attrs),
		Cmap:       cfg.Cmap,
		Divergent:  cfg.Divergent,
		Center:     cfg.Center,
		Levels:     cfg.Levels,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Coastlines: cfg.Coastlines,
		ShowTime:   cfg.ShowTime,
	}

	var fig *figure.Figure
	switch k {
	case "timeseries":
		fig, err = figure.Timeseries(map[string]array.Obj{label: obj}, figure.TimeseriesOpts{
			UseAttrs: figure.UseAttrs(cfg.Attrs),
			Legend:   cfg.Legend,
			Width:    cfg.Width,
			Height:   cfg.Height,
		})
	case "gridmap":
		fig, err = figure.GridMap(obj, mapOpts)
	case "stripes":
		fig, err = figure.Stripes(map[string]array.Obj{label: obj}, figure.StripesOpts{
			UseAttrs: figure.UseAttrs(cfg.Attrs),
			Cmap:     cfg.Cmap,
			Center:   cfg.Center,
			Divide:   cfg.Divide,
			Width:    cfg.Width,
			Height:   cfg.Height,
		})
	case "heatmap":
		fig, err = figure.Heatmap(obj, figure.HeatmapOpts{MapOpts: mapOpts, Annot: cfg.Annot})
	case "scattermap":
		fig, err = figure.ScatterMap(obj, figure.ScatterMapOpts{MapOpts: mapOpts})
	case "violin":
		fig, err = figure.Violin(map[string]array.Obj{label: obj}, figure.ViolinOpts{
			UseAttrs: figure.UseAttrs(cfg.Attrs),
			Width:    cfg.Width,
			Height:   cfg.Height,
		})
	default:
		return fmt.Errorf("unknown figure kind %q", k)
	}
	if err != nil {
		return err
	}

	if cfg.Logo.Name != "" {
		if err := stampLogo(fig, cfg.Logo); err != nil {
			return err
		}
	}

	if err := fig.Save(cfg.Out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfg.Out)
	return nil
}

// selectData picks the requested variable, or hands the whole dataset to
// the ensemble-aware figure functions.
func selectData(ds *array.Dataset, name, path string) (array.Obj, string, error) {
	if name != "" {
		da := ds.Var(name)
		if da == nil {
			return nil, "", fmt.Errorf("no variable %q in %s (have %s)",
				name, path, strings.Join(ds.VarNames(), ", "))
		}
		return da, name, nil
	}
	if ds.NumVars() == 0 {
		return nil, "", fmt.Errorf("%s holds no variables", path)
	}
	if ds.NumVars() == 1 {
		da := ds.First()
		return da, da.Name, nil
	}
	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ds, label, nil
}

func stampLogo(fig *figure.Figure, lc config.LogoConfig) error {
	store, err := logos.Open()
	if err != nil {
		return err
	}
	path, ok := store.Get(lc.Name)
	if lc.Name == "default" {
		path, ok = store.Default(), store.Default() != ""
	}
	if !ok {
		return fmt.Errorf("no logo %q in the store (have %s)",
			lc.Name, strings.Join(store.Installed(), ", "))
	}
	return fig.StampLogo(path, lc.Loc, lc.Scale)
}

func previewDataset(cmd *cobra.Command, args []string) error {
	ds, err := array.LoadDataset(args[0])
	if err != nil {
		return err
	}
	if live {
		return tui.Run(ds, themeName)
	}

	da := ds.First()
	if varName != "" {
		if da = ds.Var(varName); da == nil {
			return fmt.Errorf("no variable %q in %s", varName, args[0])
		}
	}
	if da == nil {
		return fmt.Errorf("%s holds no variables", args[0])
	}

	theme := preview.GetTheme(themeName)
	var outStr string
	if figure.InferKind(da) == "gridmap" {
		outStr, err = preview.FieldBraille(da.Squeeze(), width/2, height, theme)
	} else {
		series := da.Squeeze()
		for series.NDim() > 1 {
			if series, err = series.SelIndex(series.Dims[0], 0); err != nil {
				return err
			}
			series = series.Squeeze()
		}
		outStr, err = preview.Sparkline(series, preview.SparkOpts{
			Width:  width,
			Height: height,
			Theme:  theme,
		})
	}
	if err != nil {
		return err
	}
	fmt.Print(outStr)
	return nil
}

func showCmap(cmd *cobra.Command, args []string) error {
	cm, err := cmaps.Named(args[0])
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, c := range cm.Colors(32) {
		cc, ok := colorful.MakeColor(c)
		if !ok {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(cc.Hex())).Render("  "))
	}
	fmt.Println(cm.Name())
	fmt.Println(b.String())
	return nil
}

func logosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logos",
		Short: "manage the logo store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list installed logos",
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := logos.Open()
				if err != nil {
					return err
				}
				for _, name := range store.Installed() {
					path, _ := store.Get(name)
					fmt.Printf("%s\t%s\n", name, path)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [path] [name]",
			Short: "copy a logo file into the store",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := logos.Open()
				if err != nil {
					return err
				}
				name := ""
				if len(args) == 2 {
					name = args[1]
				}
				installed, err := store.Set(args[0], name)
				if err != nil {
					return err
				}
				fmt.Printf("installed %s\n", installed)
				return nil
			},
		},
		&cobra.Command{
			Use:   "default [name]",
			Short: "set the default logo",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := logos.Open()
				if err != nil {
					return err
				}
				return store.SetDefault(args[0])
			},
		},
		&cobra.Command{
			Use:   "install [url] [name]",
			Short: "download a logo into the store (https only)",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := logos.Open()
				if err != nil {
					return err
				}
				name := ""
				if len(args) == 2 {
					name = args[1]
				}
				installed, err := store.InstallRemote(args[0], name)
				if err != nil {
					return err
				}
				fmt.Printf("installed %s\n", installed)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove [name]",
			Short: "remove a logo from the store",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := logos.Open()
				if err != nil {
					return err
				}
				return store.Remove(args[0])
			},
		},
	)
	return cmd
}

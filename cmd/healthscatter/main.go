package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/healthscatter/internal/chart"
	"github.com/san-kum/healthscatter/internal/config"
	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/export"
	"github.com/san-kum/healthscatter/internal/filter"
	"github.com/san-kum/healthscatter/internal/metrics"
	"github.com/san-kum/healthscatter/internal/render"
	"github.com/san-kum/healthscatter/internal/selector"
	"github.com/san-kum/healthscatter/internal/viz"
)

var (
	configFile string
	logLevel   string
	logFile    string
	where      string
	viewName   string

	xField  string
	yField  string
	outPath string
	trend   bool

	theme      string
	transition time.Duration

	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logSink io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "healthscatter [csv]",
		Short:             "interactive scatter plot of U.S. state health data",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runView,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to file")
	pf.StringVar(&where, "where", "", `filter records, e.g. 'poverty > 15 && abbr != "DC"'`)
	pf.StringVar(&viewName, "view", "", "start from a named view")
	rootCmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	rootCmd.Flags().DurationVar(&transition, "transition", 0, "transition duration")

	viewCmd := &cobra.Command{
		Use:   "view [csv]",
		Short: "open the interactive chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	viewCmd.Flags().DurationVar(&transition, "transition", 0, "transition duration")

	renderCmd := &cobra.Command{
		Use:   "render [csv]",
		Short: "write the chart as svg, png or json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&xField, "x", "", "x field (poverty, age, income)")
	renderCmd.Flags().StringVar(&yField, "y", "", "y field (healthcare, smokes, obesity)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "chart.svg", "output file (.svg, .png, .json)")
	renderCmd.Flags().BoolVar(&trend, "trend", false, "draw a least squares trend line")

	tooltipCmd := &cobra.Command{
		Use:   "tooltip [abbr] [csv]",
		Short: "print the tooltip of one state",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runTooltip,
	}
	tooltipCmd.Flags().StringVar(&xField, "x", "", "x field")
	tooltipCmd.Flags().StringVar(&yField, "y", "", "y field")

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list fields and their axis labels",
		Args:  cobra.NoArgs,
		RunE:  listFields,
	}

	profileCmd := &cobra.Command{
		Use:   "profile [field] [csv]",
		Short: "plot the sorted values of a field",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runProfile,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [csv]",
		Short: "correlation and fit of a selection",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&xField, "x", "", "x field")
	statsCmd.Flags().StringVar(&yField, "y", "", "y field")

	exportCmd := &cobra.Command{
		Use:   "export [csv]",
		Short: "write the (filtered) records as csv or json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "states.csv", "output file (.csv, .json)")

	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "list named views",
		Args:  cobra.NoArgs,
		RunE:  listViews,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "healthscatter.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(viewCmd, renderCmd, tooltipCmd, fieldsCmd, profileCmd, statsCmd, exportCmd, viewsCmd, initCmd)

	err := rootCmd.Execute()
	closeLogSink()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging sends logs to --log-file when given. Without one the
// interactive view discards logs since it owns the terminal; every other
// command logs to stderr.
func setupLogging(cmd *cobra.Command, args []string) error {
	var w io.Writer = os.Stderr
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logSink = f
		w = f
	case cmd.Name() == "view" || !cmd.HasParent():
		w = io.Discard
	}
	l, err := newLogger(w, logLevel)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// closeLogSink closes the --log-file handle. It runs after Execute since
// cobra skips post-run hooks when a command fails.
func closeLogSink() {
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig merges the config file, --view and --where.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if viewName != "" && !cfg.ApplyView(viewName) {
		return nil, fmt.Errorf("unknown view: %s (see 'healthscatter views')", viewName)
	}
	if where != "" {
		cfg.Where = where
	}
	return cfg, nil
}

// selection applies --x and --y over the configured initial axes.
func selection(cfg *config.Config) (selector.Selection, error) {
	if xField != "" {
		cfg.Initial.X = xField
	}
	if yField != "" {
		cfg.Initial.Y = yField
	}
	return cfg.Selection()
}

// loadDataset reads path, or the configured data file, or the embedded
// sample, then applies the configured filter.
func loadDataset(cfg *config.Config, path string) (*dataset.Dataset, error) {
	if path == "" {
		path = cfg.Data
	}
	var ds *dataset.Dataset
	if path == "" {
		ds = dataset.Sample()
		path = "sample"
	} else {
		var err error
		if ds, err = dataset.LoadFile(path); err != nil {
			return nil, err
		}
	}
	logger.Info("dataset loaded", "source", path, "records", ds.Len())

	if cfg.Where == "" {
		return ds, nil
	}
	f, err := filter.Compile(cfg.Where)
	if err != nil {
		return nil, err
	}
	out, err := f.Apply(ds)
	if err != nil {
		return nil, err
	}
	logger.Info("filter applied", "where", f.String(), "records", out.Len())
	return out, nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sel, err := selection(cfg)
	if err != nil {
		return err
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("transition") {
		cfg.Transition = transition
	}
	path := argAt(args, 0)
	return viz.Run(viz.Settings{
		Load:       func() (*dataset.Dataset, error) { return loadDataset(cfg, path) },
		Layout:     cfg.Layout(),
		Selection:  sel,
		Transition: cfg.Transition,
		Theme:      cfg.Theme,
		Logger:     logger,
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sel, err := selection(cfg)
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg, argAt(args, 0))
	if err != nil {
		return err
	}
	ctrl, err := chart.NewController(ds, cfg.Layout(), chart.WithSelection(sel), chart.WithLogger(logger))
	if err != nil {
		return err
	}
	opts := render.Options{Fill: cfg.Point.Fill, Opacity: cfg.Point.Opacity, Trend: trend}
	if err := render.WriteFile(outPath, ctrl.Frame(), opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, %d states)\n", outPath, sel, ds.Len())
	return nil
}

func runTooltip(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sel, err := selection(cfg)
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg, argAt(args, 1))
	if err != nil {
		return err
	}
	r, ok := ds.Lookup(args[0])
	if !ok {
		return fmt.Errorf("no state with abbreviation %q", args[0])
	}
	fmt.Println(selector.FormatTooltip(r, sel).String())
	return nil
}

func listFields(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sel, err := cfg.Selection()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tFIELD\tLABEL\tACTIVE")
	for _, l := range selector.LabelStates(sel) {
		active := ""
		if l.Active {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Axis, l.Field, l.Text, active)
	}
	return w.Flush()
}

func runProfile(cmd *cobra.Command, args []string) error {
	f, ok := dataset.ParseField(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", selector.ErrUnknownField, args[0])
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg, argAt(args, 1))
	if err != nil {
		return err
	}
	vals := ds.Sorted(f)
	if len(vals) == 0 {
		return fmt.Errorf("%w: no records", dataset.ErrUnavailable)
	}
	sum := metrics.Summarize(vals)

	fmt.Println(asciigraph.Plot(vals,
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("%s, %d states sorted", selector.LabelFor(f).Text, sum.N))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIN\tMEDIAN\tMEAN\tMAX\tSTDDEV")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
		selector.FormatValue(f, sum.Min),
		selector.FormatValue(f, sum.Median),
		selector.FormatValue(f, round2(sum.Mean)),
		selector.FormatValue(f, sum.Max),
		sum.StdDev,
	)
	return w.Flush()
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sel, err := selection(cfg)
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg, argAt(args, 0))
	if err != nil {
		return err
	}
	reg := metrics.NewRegression()
	vals := metrics.Evaluate(ds, sel, metrics.NewCorrelation(), reg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SELECTION\tSTATES\tPEARSON R\tSLOPE\tINTERCEPT")
	fmt.Fprintf(w, "%s\t%d\t%.3f\t%.4g\t%.4g\n",
		sel, ds.Len(), vals["pearson_r"], vals["slope"], reg.Intercept())
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg, argAt(args, 0))
	if err != nil {
		return err
	}
	if err := export.WriteFile(outPath, ds); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d states)\n", outPath, ds.Len())
	return nil
}

func listViews(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY")
	for _, name := range config.ListViews() {
		v, _ := config.GetView(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, v.X, v.Y)
	}
	return w.Flush()
}

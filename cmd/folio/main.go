package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/export"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/fegerar/folio/internal/logging"
	"github.com/fegerar/folio/internal/site"
	"github.com/fegerar/folio/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	logFile    string

	// svg
	step       int
	field      string
	showValues bool
	braille    bool
	outFile    string

	// build / serve
	outDir string
	addr   string
	watch  bool

	// widgets
	animatedOnly bool

	// record
	cycles int
	speed  string
	scale  float64

	// plot
	plotSVG string

	logger    = logging.NewLogger(os.Stderr)
	logCloser io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "personal portfolio with interactive ML widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != "" {
				l, closer, err := logging.OpenFile(logFile)
				if err != nil {
					return err
				}
				logger, logCloser = l, closer
			}
			return logging.SetLevel(logger, logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".folio", "data directory for recorded runs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")

	widgetCmd := &cobra.Command{
		Use:   "widget [name]",
		Short: "show a single widget full screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(args)
		},
	}

	widgetsCmd := &cobra.Command{
		Use:   "widgets",
		Short: "list widgets",
		RunE:  listWidgets,
	}
	widgetsCmd.Flags().BoolVar(&animatedOnly, "animated", false, "only timer-driven widgets (recordable)")

	svgCmd := &cobra.Command{
		Use:   "svg [name]",
		Short: "render one widget frame as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().IntVar(&step, "step", 0, "frame index")
	svgCmd.Flags().StringVar(&field, "field", "", "decision tree split field")
	svgCmd.Flags().BoolVar(&showValues, "values", false, "print perceptron activations")
	svgCmd.Flags().BoolVar(&braille, "braille", false, "render the terminal plot instead")
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "write the static site",
		RunE:  buildSite,
	}
	buildCmd.Flags().StringVar(&outDir, "out", "public", "output directory")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the site over http",
		RunE:  serveSite,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&watch, "watch", false, "reload when the config file changes")

	recordCmd := &cobra.Command{
		Use:   "record [name]",
		Short: "replay a widget headlessly and save every frame",
		Args:  cobra.ExactArgs(1),
		RunE:  recordRun,
	}
	recordCmd.Flags().IntVar(&cycles, "cycles", 1, "full passes over the snapshots")
	recordCmd.Flags().StringVar(&speed, "speed", "", "playback speed (0.5x, 1x, 1.5x, 2x)")
	recordCmd.Flags().Float64Var(&scale, "scale", 1, "compress playback time by this factor")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write the metric series as svg")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return openStore().ExportCSV(os.Stdout, args[0])
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return openStore().ExportJSON(os.Stdout, args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "folio.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Create(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})

	rootCmd.AddCommand(widgetCmd, widgetsCmd, svgCmd, buildCmd, serveCmd, recordCmd, runsCmd, plotCmd, exportCSVCmd, exportJSONCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runPage starts the terminal page, or a single widget when names is set.
// Without --log-file nothing is logged while the alternate screen is up.
func runPage(names []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pageLog := logging.Discard()
	if logFile != "" {
		pageLog = logging.WithPrefix(logger, "page")
	}
	reg := gallery.NewRegistry()
	opts := []viz.Option{viz.WithLogger(pageLog)}

	var app viz.App
	if names != nil {
		app, err = viz.NewAppFor(cfg, reg, names, append(opts, viz.WidgetOnly())...)
	} else {
		app, err = viz.NewApp(cfg, reg, opts...)
	}
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func listWidgets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tFRAMES\tINTERVAL")
	reg := gallery.NewRegistry()
	widgets := reg.All()
	if animatedOnly {
		widgets = reg.Animated()
	}
	for _, wd := range widgets {
		interval := "keyboard"
		if wd.Interval() > 0 {
			interval = wd.Interval().String()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", wd.Name(), wd.Title(), wd.Frames(), interval)
	}
	return w.Flush()
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, err := gallery.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}
	if step < 0 || step >= w.Frames() {
		return fmt.Errorf("step %d out of range for %s (0-%d)", step, w.Name(), w.Frames()-1)
	}

	var out string
	if braille {
		canvas, err := viz.Snapshot(w, step, field, viz.NewStyles(viz.GetTheme(cfg.Theme)))
		if err != nil {
			return err
		}
		out = export.CanvasToSVG(canvas, 4)
	} else {
		out, err = export.WidgetSVG(w, step, export.Options{ShowValues: showValues, Field: field})
		if err != nil {
			return err
		}
	}

	if outFile == "" {
		_, err = fmt.Fprint(os.Stdout, out)
		return err
	}
	if err := os.WriteFile(outFile, []byte(out), 0644); err != nil {
		return err
	}
	logger.Info("svg written", "widget", w.Name(), "step", step, "file", outFile)
	return nil
}

func buildSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	res, err := site.Build(ctx, outDir, cfg, gallery.NewRegistry(), logging.WithPrefix(logger, "build"))
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d files to %s\n", len(res.Files), outDir)
	return nil
}

func serveSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watch && configFile == "" {
		return fmt.Errorf("--watch needs --config")
	}
	srv, err := site.NewServer(cfg, configFile, gallery.NewRegistry(), logging.WithPrefix(logger, "serve"))
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return srv.ListenAndServe(ctx, addr, watch)
}

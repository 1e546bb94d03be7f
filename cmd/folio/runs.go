package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/fegerar/folio/internal/export"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/fegerar/folio/internal/logging"
	"github.com/fegerar/folio/internal/playback"
	"github.com/fegerar/folio/internal/storage"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func openStore() *storage.Store {
	return storage.New(dataDir)
}

func recordRun(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sp := cfg.PlaybackSpeed()
	if cmd.Flags().Changed("speed") {
		if sp, err = playback.ParseSpeed(speed); err != nil {
			return err
		}
	}

	if scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %g", scale)
	}

	st := openStore()
	if err := st.Init(); err != nil {
		return err
	}

	var sched playback.Scheduler
	if scale != 1 {
		sched = playback.ScaledScheduler{Factor: scale}
	}

	sessionLog := logging.WithLogger(logging.WithPrefix(logger, "record"), "widget", name)
	session, err := gallery.NewSession(gallery.NewRegistry(), gallery.Config{
		Widget:    name,
		Speed:     sp,
		Cycles:    cycles,
		Scheduler: sched,
	}, sessionLog)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	rec, err := session.Run(ctx)
	if err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}
	if err != nil {
		sessionLog.Warn("interrupted, saving partial run", "frames", len(rec.Frames))
	}

	runID, err := st.Save(rec)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(rec.Frames))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := openStore().List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWIDGET\tTIME\tSPEED\tCYCLES\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Widget,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Speed,
			run.Cycles,
			run.Frames,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := openStore()
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("widget: %s\n", meta.Widget)
	fmt.Printf("frames: %d\n\n", len(table.Rows))

	var last []float64
	for _, col := range table.Columns {
		if col == "step" || col == "elapsed_ms" {
			continue
		}
		data, _ := table.Column(col)
		if len(data) < 2 {
			continue
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(col),
		))
		fmt.Println()
		last = data
	}

	for _, name := range slices.Sorted(maps.Keys(meta.Metrics)) {
		fmt.Printf("  %s: %.4f\n", name, meta.Metrics[name])
	}

	if plotSVG == "" {
		return nil
	}
	if last == nil {
		return fmt.Errorf("run %s has no series to export", runID)
	}
	if err := os.WriteFile(plotSVG, []byte(export.SeriesToSVG(last, 600, 300, export.ColorPrimary)), 0644); err != nil {
		return err
	}
	logger.Info("series written", "file", plotSVG)
	return nil
}

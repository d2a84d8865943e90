package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rdplot/internal/geom"
	"rdplot/internal/tui"
)

func main() {
	var (
		start        = flag.Float64("start", tui.DefaultParams.Start, "interval start")
		end          = flag.Float64("end", tui.DefaultParams.End, "interval end")
		steps        = flag.Uint("steps", uint(tui.DefaultParams.Steps), "number of samples")
		epsilon      = flag.Float64("epsilon", tui.DefaultParams.Epsilon, "simplification tolerance")
		fn           = flag.String("func", geom.Sine.String(), "curve: sin, cos, exp, poly, gauss, damped, square")
		metric       = flag.String("metric", geom.Vertical.String(), "distance metric: vertical or perpendicular")
		scan         = flag.String("scan", geom.ScanAll.String(), "interior scan range: all or skiplast")
		printWKTFlag = flag.Bool("print", false, "print the source and simplified polylines as WKT and exit")
		debug        = flag.String("debug", "", "write a debug log to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: rdplot [flags] [WKT]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := parseConfig(*start, *end, *steps, *epsilon, *fn, *metric, *scan)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rdplot:", err)
		os.Exit(2)
	}

	if *debug != "" {
		f, err := tea.LogToFile(*debug, "rdplot")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		cfg.Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		geom.SetLogger(cfg.Logger)
	}

	if *printWKTFlag {
		if err := printWKT(os.Stdout, cfg, flag.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, "rdplot:", err)
			os.Exit(1)
		}
		return
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithWKT(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"optimal-execution/internal/analysis"
	"optimal-execution/internal/config"
	"optimal-execution/internal/logger"
	"optimal-execution/internal/model"
	"optimal-execution/internal/sweep"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sweep":
		cmdSweep(os.Args[2:])
	case "zeta":
		cmdZeta(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli sweep --config examples/config.yaml --out results")
	fmt.Println("  cli zeta --alpha 1e9 --b 0.001 --phi 0.01 --k 0.01")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - sweep writes inventory.csv and trading_speed.csv, one column per phi")
	fmt.Println("  - zeta prints the boundary-condition ratio for one parameter tuple")
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outDir := fs.String("out", "results", "Output directory for CSV trajectories")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fatal(err)
	}
	log.Info().
		Int("phis", len(cfg.Model.Phi)).
		Float64("time_horizon", cfg.Model.TimeHorizon).
		Msg("running sweep")

	engine := sweep.New()
	var res *sweep.Result
	if cfg.Sweep.Partial {
		res, err = engine.RunPartial(cfg.Model.ToModelParams(), cfg.Model.Phi)
	} else {
		res, err = engine.Run(cfg.Model.ToModelParams(), cfg.Model.Phi)
	}
	if err != nil {
		fatal(err)
	}
	for phi, perr := range res.Errors {
		log.Warn().Float64("phi", phi).Err(perr).Msg("phi skipped")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal(err)
	}
	invPath := filepath.Join(*outDir, "inventory.csv")
	spdPath := filepath.Join(*outDir, "trading_speed.csv")
	if err := sweep.WriteTrajectoriesCSV(invPath, res.Phis, res.Inventory); err != nil {
		fatal(err)
	}
	if err := sweep.WriteTrajectoriesCSV(spdPath, res.Phis, res.TradingSpeed); err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %s and %s (%d phi values, %d samples each)\n",
		invPath, spdPath, len(res.Phis), model.NumSamples)
	printSummaries(analysis.SummarizeSweep(res))
}

func cmdZeta(args []string) {
	fs := flag.NewFlagSet("zeta", flag.ExitOnError)
	alpha := fs.Float64("alpha", 1e9, "Terminal inventory penalty")
	b := fs.Float64("b", 0, "Permanent impact coefficient")
	phi := fs.Float64("phi", 0, "Risk-aversion parameter")
	k := fs.Float64("k", 0, "Temporary impact coefficient")
	_ = fs.Parse(args)

	z, err := model.Zeta(*alpha, *b, *phi, *k)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("zeta=%g\n", z)
}

func printSummaries(summaries []analysis.ScheduleSummary) {
	fmt.Println("phi        terminal_q  peak_speed  half_life  liquidated")
	for _, s := range summaries {
		fmt.Printf("%-10g %-11.4f %-11.4f %-10.4f %.4f\n",
			s.Phi, s.TerminalInventory, s.PeakSpeed, s.HalfLifeTime, s.SharesLiquidated)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

package main

import (
	"flag"
	"fmt"

	"optimal-execution/internal/analysis"
	"optimal-execution/internal/model"
	"optimal-execution/internal/sweep"
)

// Demo:
// - Build a default parameter set (100 shares, alpha 1e9, unit horizon)
// - Sweep a few phi values to show how the pieces fit together
// - Print the per-phi schedule summaries and a short slice of q(t)
func main() {
	b := flag.Float64("b", 0.001, "Permanent impact coefficient")
	k := flag.Float64("k", 0.01, "Temporary impact coefficient")
	flag.Parse()

	params := model.ExecutionParams{
		Shares:      100,
		Alpha:       1e9,
		B:           *b,
		K:           *k,
		TimeHorizon: 1,
	}
	phis := []float64{0.001, 0.01, 0.1}

	res, err := sweep.New().Run(params, phis)
	if err != nil {
		panic(err)
	}

	for _, s := range analysis.SummarizeSweep(res) {
		fmt.Printf("phi=%-8g terminal inventory=%.4f peak speed=%.4f\n",
			s.Phi, s.TerminalInventory, s.PeakSpeed)
	}

	fmt.Println("\nfirst samples of q(t) for phi=0.01:")
	for _, sample := range res.Inventory[0.01][:5] {
		fmt.Printf("  t=%.4f q=%.4f\n", sample.Time, sample.Value)
	}
}

package analysis

import (
	"sort"

	"optimal-execution/internal/sweep"
)

// SummarizeSweep builds one summary per phi, in the sweep's configured
// order.
func SummarizeSweep(res *sweep.Result) []ScheduleSummary {
	out := make([]ScheduleSummary, 0, len(res.Phis))
	for _, phi := range res.Phis {
		out = append(out, Summarize(phi, res.Inventory[phi], res.TradingSpeed[phi]))
	}
	return out
}

// RankByUrgency sorts summaries descending by peak trading speed, the
// natural "how front-loaded is this schedule" ordering across phi.
func RankByUrgency(summaries []ScheduleSummary) []ScheduleSummary {
	out := make([]ScheduleSummary, len(summaries))
	copy(out, summaries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PeakSpeed > out[j].PeakSpeed
	})
	return out
}

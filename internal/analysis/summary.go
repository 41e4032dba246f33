package analysis

import (
	"math"

	"optimal-execution/internal/model"
)

// ScheduleSummary is a per-phi digest of a liquidation schedule, meant
// for ranking and tabular display alongside the raw trajectories.
type ScheduleSummary struct {
	Phi float64 `json:"phi"`

	InitialInventory  float64 `json:"initial_inventory"`
	TerminalInventory float64 `json:"terminal_inventory"`

	// SharesLiquidated is the trapezoidal integral of the trading-speed
	// trajectory; for a well-behaved schedule it approximates the
	// initial inventory.
	SharesLiquidated float64 `json:"shares_liquidated"`

	PeakSpeed     float64 `json:"peak_speed"`
	PeakSpeedTime float64 `json:"peak_speed_time"`

	// HalfLifeTime is the first sample time at which remaining
	// inventory drops to half the initial inventory, or NaN if it
	// never does within the horizon.
	HalfLifeTime float64 `json:"half_life_time"`
}

func Summarize(phi float64, inventory, speed model.Trajectory) ScheduleSummary {
	s := ScheduleSummary{Phi: phi, HalfLifeTime: math.NaN()}
	if len(inventory) == 0 || len(speed) == 0 {
		return s
	}

	s.InitialInventory = inventory[0].Value
	s.TerminalInventory = inventory[len(inventory)-1].Value
	s.SharesLiquidated = speed.Integrate()

	peak := math.Inf(-1)
	for _, p := range speed {
		if p.Value > peak {
			peak = p.Value
			s.PeakSpeedTime = p.Time
		}
	}
	s.PeakSpeed = peak

	half := s.InitialInventory / 2
	for _, p := range inventory {
		if p.Value <= half {
			s.HalfLifeTime = p.Time
			break
		}
	}
	return s
}

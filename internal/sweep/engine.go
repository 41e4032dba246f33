package sweep

import (
	"fmt"

	"optimal-execution/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Result holds the outcome of one sweep over a set of phi values.
// Phis preserves the configured order for display; the maps are keyed
// by phi. In partial mode, Errors holds the failure for every phi that
// produced no trajectories.
type Result struct {
	Phis         []float64
	Inventory    map[float64]model.Trajectory
	TradingSpeed map[float64]model.Trajectory
	Errors       map[float64]error
}

// Run evaluates inventory and trading-speed trajectories for every phi,
// holding the remaining parameters fixed. It aborts on the first model
// error (fail-fast), so a failed sweep yields no partial result.
func (e *Engine) Run(base model.ExecutionParams, phis []float64) (*Result, error) {
	if len(phis) == 0 {
		return nil, fmt.Errorf("no phi values")
	}

	res := newResult(len(phis))
	for _, phi := range phis {
		if err := res.evaluate(base.WithPhi(phi)); err != nil {
			return nil, fmt.Errorf("phi=%v: %w", phi, err)
		}
	}
	return res, nil
}

// RunPartial evaluates every phi and collects per-phi failures instead
// of aborting. Each phi appears either in both trajectory maps or in
// Errors, never in both.
func (e *Engine) RunPartial(base model.ExecutionParams, phis []float64) (*Result, error) {
	if len(phis) == 0 {
		return nil, fmt.Errorf("no phi values")
	}

	res := newResult(len(phis))
	for _, phi := range phis {
		if err := res.evaluate(base.WithPhi(phi)); err != nil {
			res.Errors[phi] = err
		}
	}
	return res, nil
}

func newResult(n int) *Result {
	return &Result{
		Phis:         make([]float64, 0, n),
		Inventory:    make(map[float64]model.Trajectory, n),
		TradingSpeed: make(map[float64]model.Trajectory, n),
		Errors:       map[float64]error{},
	}
}

func (r *Result) evaluate(p model.ExecutionParams) error {
	inv, err := model.Inventory(p)
	if err != nil {
		return err
	}
	spd, err := model.TradingSpeed(p)
	if err != nil {
		return err
	}
	r.Phis = append(r.Phis, p.Phi)
	r.Inventory[p.Phi] = inv
	r.TradingSpeed[p.Phi] = spd
	return nil
}

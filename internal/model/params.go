package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the closed-form evaluator. Callers branch with
// errors.Is; the wrapped message carries the offending value.
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrSingularDenominator = errors.New("singular denominator")
)

// DefaultEpsilon is the tolerance below which a denominator is treated
// as zero.
const DefaultEpsilon = 1e-12

// ExecutionParams defines one optimal-execution problem instance.
// Units/conventions:
// - Shares: initial inventory R to liquidate (shares)
// - Alpha: terminal inventory penalty (large => full liquidation enforced)
// - B: permanent price impact coefficient
// - Phi: risk-aversion / urgency parameter, >= 0
// - K: temporary price impact coefficient, > 0
// - TimeHorizon: trading window length T, > 0
// - Epsilon: singularity tolerance; 0 means DefaultEpsilon
type ExecutionParams struct {
	Shares      float64
	Alpha       float64
	B           float64
	Phi         float64
	K           float64
	TimeHorizon float64
	Epsilon     float64
}

func (p ExecutionParams) Validate() error {
	if p.Shares <= 0 {
		return fmt.Errorf("%w: Shares must be > 0, got %v", ErrInvalidParameter, p.Shares)
	}
	if p.Phi < 0 {
		return fmt.Errorf("%w: Phi must be >= 0, got %v", ErrInvalidParameter, p.Phi)
	}
	if p.K <= 0 {
		return fmt.Errorf("%w: K must be > 0, got %v", ErrInvalidParameter, p.K)
	}
	if p.TimeHorizon <= 0 {
		return fmt.Errorf("%w: TimeHorizon must be > 0, got %v", ErrInvalidParameter, p.TimeHorizon)
	}
	if p.Epsilon < 0 {
		return fmt.Errorf("%w: Epsilon must be >= 0, got %v", ErrInvalidParameter, p.Epsilon)
	}
	return nil
}

// WithPhi returns a copy with Phi replaced. Used by sweeps where only
// the risk-aversion parameter varies.
func (p ExecutionParams) WithPhi(phi float64) ExecutionParams {
	p.Phi = phi
	return p
}

func (p ExecutionParams) epsilon() float64 {
	if p.Epsilon > 0 {
		return p.Epsilon
	}
	return DefaultEpsilon
}

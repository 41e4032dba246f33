package model

import (
	"fmt"
	"math"
)

// Closed-form solution of the linear-quadratic optimal liquidation
// problem with permanent impact B and temporary impact K:
//
//	zeta = (alpha - b/2 + sqrt(phi k)) / (alpha - b/2 - sqrt(phi k))
//	gamma = sqrt(phi / k)
//	q(t) = R (zeta e^{gamma (T-t)} - e^{-gamma (T-t)}) / (zeta e^{gamma T} - e^{-gamma T})
//	v(t) = R gamma (zeta e^{gamma (T-t)} + e^{-gamma (T-t)}) / (zeta e^{gamma T} - e^{-gamma T})
//
// The phi = 0 (gamma = 0) case is the L'Hopital limit of the above:
// the linear schedule q(t) = R (T-t)/T with constant speed v = R/T.

// Zeta computes the boundary-condition ratio of the closed form.
// Returns ErrInvalidParameter if phi*k < 0 and ErrSingularDenominator
// if alpha - b/2 - sqrt(phi*k) is within DefaultEpsilon of zero.
func Zeta(alpha, b, phi, k float64) (float64, error) {
	return zeta(alpha, b, phi, k, DefaultEpsilon)
}

func zeta(alpha, b, phi, k, eps float64) (float64, error) {
	if phi*k < 0 {
		return 0, fmt.Errorf("%w: phi*k must be >= 0, got %v", ErrInvalidParameter, phi*k)
	}
	root := math.Sqrt(phi * k)
	denom := alpha - b/2 - root
	if math.Abs(denom) <= eps {
		return 0, fmt.Errorf("%w: alpha - b/2 - sqrt(phi*k) = %v", ErrSingularDenominator, denom)
	}
	return (alpha - b/2 + root) / denom, nil
}

// Inventory evaluates the optimal remaining-inventory path q(t) on the
// NumSamples grid over [0, TimeHorizon]. q(0) equals Shares and
// q(TimeHorizon) is the closed form's terminal value.
func Inventory(p ExecutionParams) (Trajectory, error) {
	return evaluate(p,
		func(z, gamma, tau, horizon float64) float64 {
			// Both terms scaled by e^{-gamma T} so large gamma*T cannot
			// overflow; the ratio is unchanged.
			num := z*math.Exp(gamma*(tau-horizon)) - math.Exp(-gamma*(tau+horizon))
			den := z - math.Exp(-2*gamma*horizon)
			return num / den
		},
		func(p ExecutionParams, t float64) float64 {
			return p.Shares * (p.TimeHorizon - t) / p.TimeHorizon
		})
}

// TradingSpeed evaluates the liquidation rate v(t) = -q'(t) on the same
// grid as Inventory.
func TradingSpeed(p ExecutionParams) (Trajectory, error) {
	return evaluate(p,
		func(z, gamma, tau, horizon float64) float64 {
			num := gamma * (z*math.Exp(gamma*(tau-horizon)) + math.Exp(-gamma*(tau+horizon)))
			den := z - math.Exp(-2*gamma*horizon)
			return num / den
		},
		func(p ExecutionParams, t float64) float64 {
			return p.Shares / p.TimeHorizon
		})
}

// evaluate runs the shared parameter validation, singularity checks and
// sampling loop. kernel receives (zeta, gamma, remaining, horizon) and
// returns the value before scaling by Shares; limit is the gamma -> 0
// schedule used when phi vanishes.
func evaluate(p ExecutionParams, kernel func(z, gamma, tau, horizon float64) float64, limit func(p ExecutionParams, t float64) float64) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	eps := p.epsilon()
	horizon := p.TimeHorizon
	grid := TimeGrid(horizon)
	out := make(Trajectory, 0, NumSamples)

	gamma := math.Sqrt(p.Phi / p.K)
	if gamma*horizon <= eps {
		for _, t := range grid {
			out = append(out, Sample{Time: t, Value: limit(p, t)})
		}
		return out, nil
	}

	z, err := zeta(p.Alpha, p.B, p.Phi, p.K, eps)
	if err != nil {
		return nil, err
	}
	// Scaled shared denominator; zero here iff zeta e^{gamma T} - e^{-gamma T} is zero.
	if math.Abs(z-math.Exp(-2*gamma*horizon)) <= eps {
		return nil, fmt.Errorf("%w: zeta*e^(gamma*T) - e^(-gamma*T) vanishes for phi=%v", ErrSingularDenominator, p.Phi)
	}

	for _, t := range grid {
		out = append(out, Sample{Time: t, Value: p.Shares * kernel(z, gamma, horizon-t, horizon)})
	}
	return out, nil
}

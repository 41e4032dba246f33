package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioParams() ExecutionParams {
	return ExecutionParams{
		Shares:      100,
		Alpha:       1e9,
		B:           0.001,
		Phi:         0.01,
		K:           0.01,
		TimeHorizon: 1,
	}
}

func TestZetaNearOneForLargeAlpha(t *testing.T) {
	z, err := Zeta(1e9, 0.001, 0.01, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, z, 1e-9)
	assert.Greater(t, z, 1.0)
}

func TestZetaDependsOnlyOnPhiKProduct(t *testing.T) {
	base, err := Zeta(10, 0.5, 0.04, 0.25)
	require.NoError(t, err)

	for _, c := range []float64{2, 10, 100} {
		scaled, err := Zeta(10, 0.5, 0.04*c, 0.25/c)
		require.NoError(t, err)
		assert.InEpsilon(t, base, scaled, 1e-12, "scale factor %v", c)
	}
}

func TestZetaSingularDenominator(t *testing.T) {
	// alpha - b/2 - sqrt(phi*k) = 1 - 0 - 1 = 0
	_, err := Zeta(1, 0, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingularDenominator))
}

func TestInventoryShape(t *testing.T) {
	p := scenarioParams()
	inv, err := Inventory(p)
	require.NoError(t, err)
	require.Len(t, inv, NumSamples)

	assert.InDelta(t, p.Shares, inv[0].Value, 1e-6, "q(0) must equal initial inventory")
	assert.Equal(t, 0.0, inv[0].Time)
	assert.Equal(t, p.TimeHorizon, inv[NumSamples-1].Time)

	for i := 1; i < len(inv); i++ {
		assert.Greater(t, inv[i].Time, inv[i-1].Time, "time axis must be strictly increasing")
		assert.LessOrEqual(t, inv[i].Value, inv[i-1].Value, "inventory must be non-increasing at sample %d", i)
	}
}

func TestInventoryTerminalValueMatchesClosedForm(t *testing.T) {
	p := scenarioParams()
	inv, err := Inventory(p)
	require.NoError(t, err)

	// Terminal value from the unscaled closed form at t = T.
	z, err := Zeta(p.Alpha, p.B, p.Phi, p.K)
	require.NoError(t, err)
	gamma := math.Sqrt(p.Phi / p.K)
	want := p.Shares * (z - 1) / (z*math.Exp(gamma*p.TimeHorizon) - math.Exp(-gamma*p.TimeHorizon))

	got := inv[NumSamples-1].Value
	assert.InDelta(t, want, got, math.Abs(want)*1e-9+1e-15)
}

func TestTradingSpeedPositiveAndIntegratesToShares(t *testing.T) {
	p := scenarioParams()
	spd, err := TradingSpeed(p)
	require.NoError(t, err)
	require.Len(t, spd, NumSamples)

	for i, s := range spd {
		assert.Greater(t, s.Value, 0.0, "trading speed must be strictly positive at sample %d", i)
	}

	// Trapezoidal integral of v over [0, T] recovers the shares
	// liquidated, up to grid resolution.
	assert.InDelta(t, p.Shares, spd.Integrate(), 0.05)
}

func TestPhiZeroLinearLimit(t *testing.T) {
	p := scenarioParams()
	p.Phi = 0

	inv, err := Inventory(p)
	require.NoError(t, err)
	spd, err := TradingSpeed(p)
	require.NoError(t, err)

	for i, s := range inv {
		want := p.Shares * (p.TimeHorizon - s.Time) / p.TimeHorizon
		assert.InDelta(t, want, s.Value, 1e-12, "sample %d", i)
	}
	for i, s := range spd {
		assert.InDelta(t, p.Shares/p.TimeHorizon, s.Value, 1e-12, "sample %d", i)
	}
}

func TestLargeGammaDoesNotOverflow(t *testing.T) {
	p := scenarioParams()
	p.Phi = 1e6
	p.K = 1e-6 // gamma = 1e6; naive exponentials would overflow

	inv, err := Inventory(p)
	require.NoError(t, err)
	spd, err := TradingSpeed(p)
	require.NoError(t, err)

	for i := range inv {
		assert.False(t, math.IsNaN(inv[i].Value) || math.IsInf(inv[i].Value, 0), "inventory sample %d", i)
		assert.False(t, math.IsNaN(spd[i].Value) || math.IsInf(spd[i].Value, 0), "speed sample %d", i)
	}
	assert.InDelta(t, p.Shares, inv[0].Value, 1e-6)
}

func TestSingularTrajectoryDenominator(t *testing.T) {
	// alpha - b/2 - sqrt(phi*k) = 0.01 - 0 - 0.01 = 0: zeta itself is
	// singular, surfaced before any samples are produced.
	p := ExecutionParams{Shares: 100, Alpha: 0.01, B: 0, Phi: 1, K: 1e-4, TimeHorizon: 1}

	inv, err := Inventory(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingularDenominator))
	assert.Nil(t, inv)
}

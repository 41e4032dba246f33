package model

// NumSamples is the fixed resolution of every trajectory: 50 uniformly
// spaced samples spanning [0, TimeHorizon], both endpoints included.
const NumSamples = 50

// Sample is one (time, value) point of a trajectory.
type Sample struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// Trajectory is an ordered sequence of samples with strictly increasing
// time. Produced once by the evaluator and never mutated afterwards.
type Trajectory []Sample

// TimeGrid returns the NumSamples uniform sample times on [0, horizon].
func TimeGrid(horizon float64) []float64 {
	grid := make([]float64, NumSamples)
	step := horizon / float64(NumSamples-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	grid[NumSamples-1] = horizon
	return grid
}

// Times returns the time axis of the trajectory.
func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Time
	}
	return out
}

// Values returns the value axis of the trajectory.
func (tr Trajectory) Values() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Value
	}
	return out
}

// Integrate computes the trapezoidal integral of the trajectory over its
// time axis.
func (tr Trajectory) Integrate() float64 {
	sum := 0.0
	for i := 1; i < len(tr); i++ {
		dt := tr[i].Time - tr[i-1].Time
		sum += 0.5 * (tr[i].Value + tr[i-1].Value) * dt
	}
	return sum
}

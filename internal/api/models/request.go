package models

// SweepRequest represents the request body for evaluating a phi sweep
type SweepRequest struct {
	Model   ModelRequest `json:"model" binding:"required"`
	Options SweepOptions `json:"options,omitempty"`
}

// ModelRequest defines the model parameters for one sweep.
// Zero-valued shares/alpha/time_horizon fall back to the standard
// defaults (100, 1e9, 1).
type ModelRequest struct {
	Shares      float64   `json:"shares,omitempty"`
	Alpha       float64   `json:"alpha,omitempty"`
	B           float64   `json:"b"`
	K           float64   `json:"k"`
	Phi         []float64 `json:"phi" binding:"required"`
	TimeHorizon float64   `json:"time_horizon,omitempty"`
	Epsilon     float64   `json:"epsilon,omitempty"`
}

// SweepOptions contains optional sweep parameters
type SweepOptions struct {
	// Partial collects per-phi errors instead of failing the whole
	// sweep on the first bad phi.
	Partial bool `json:"partial,omitempty"`
	// IncludeSummaries adds per-phi schedule summaries to the response.
	IncludeSummaries bool `json:"include_summaries,omitempty"`
}

// ZetaRequest represents the query parameters for GET /api/v1/zeta
type ZetaRequest struct {
	Alpha float64 `form:"alpha" binding:"required"`
	B     float64 `form:"b"`
	Phi   float64 `form:"phi"`
	K     float64 `form:"k" binding:"required"`
}

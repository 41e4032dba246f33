package models

import (
	"optimal-execution/internal/analysis"
	"optimal-execution/internal/model"
)

// SweepResponse represents the response from a sweep evaluation.
// Trajectories preserves the requested phi order.
type SweepResponse struct {
	Status       string                     `json:"status"` // "ok" or "partial"
	Trajectories []PhiTrajectories          `json:"trajectories"`
	Summaries    []analysis.ScheduleSummary `json:"summaries,omitempty"`
	Errors       []PhiError                 `json:"errors,omitempty"`
}

// PhiTrajectories bundles both trajectories for one phi.
type PhiTrajectories struct {
	Phi          float64          `json:"phi"`
	Inventory    model.Trajectory `json:"inventory"`
	TradingSpeed model.Trajectory `json:"trading_speed"`
}

// PhiError reports a phi that produced no trajectories in partial mode.
type PhiError struct {
	Phi     float64 `json:"phi"`
	Code    string  `json:"code"`
	Message string  `json:"message"`
}

// ZetaResponse represents the response from GET /api/v1/zeta
type ZetaResponse struct {
	Zeta float64 `json:"zeta"`
}

// ParameterInfo describes one model parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

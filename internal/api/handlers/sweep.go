package handlers

import (
	"errors"
	"net/http"
	"sort"

	"optimal-execution/internal/analysis"
	"optimal-execution/internal/api/models"
	"optimal-execution/internal/model"
	"optimal-execution/internal/sweep"

	"github.com/gin-gonic/gin"
)

// Standard defaults applied when a request leaves the shared fields
// zero.
const (
	DefaultShares      = 100.0
	DefaultAlpha       = 1e9
	DefaultTimeHorizon = 1.0
)

// SweepHandler handles sweep evaluation requests
type SweepHandler struct {
	engine *sweep.Engine
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler() *SweepHandler {
	return &SweepHandler{engine: sweep.New()}
}

// RunSweep handles POST /api/v1/sweep
func (h *SweepHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params := paramsFromRequest(req.Model)

	var (
		res *sweep.Result
		err error
	)
	if req.Options.Partial {
		res, err = h.engine.RunPartial(params, req.Model.Phi)
	} else {
		res, err = h.engine.Run(params, req.Model.Phi)
	}
	if err != nil {
		status, code := classifyModelError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SweepResponse{Status: "ok"}
	for _, phi := range res.Phis {
		resp.Trajectories = append(resp.Trajectories, models.PhiTrajectories{
			Phi:          phi,
			Inventory:    res.Inventory[phi],
			TradingSpeed: res.TradingSpeed[phi],
		})
	}
	if len(res.Errors) > 0 {
		resp.Status = "partial"
		resp.Errors = phiErrors(res.Errors)
	}
	if req.Options.IncludeSummaries {
		resp.Summaries = analysis.SummarizeSweep(res)
	}

	c.JSON(http.StatusOK, resp)
}

func paramsFromRequest(m models.ModelRequest) model.ExecutionParams {
	p := model.ExecutionParams{
		Shares:      m.Shares,
		Alpha:       m.Alpha,
		B:           m.B,
		K:           m.K,
		TimeHorizon: m.TimeHorizon,
		Epsilon:     m.Epsilon,
	}
	if p.Shares == 0 {
		p.Shares = DefaultShares
	}
	if p.Alpha == 0 {
		p.Alpha = DefaultAlpha
	}
	if p.TimeHorizon == 0 {
		p.TimeHorizon = DefaultTimeHorizon
	}
	return p
}

func classifyModelError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidParameter):
		return http.StatusBadRequest, "INVALID_PARAMETER"
	case errors.Is(err, model.ErrSingularDenominator):
		return http.StatusUnprocessableEntity, "SINGULAR_DENOMINATOR"
	default:
		return http.StatusInternalServerError, "EVALUATION_ERROR"
	}
}

func phiErrors(byPhi map[float64]error) []models.PhiError {
	out := make([]models.PhiError, 0, len(byPhi))
	for phi, err := range byPhi {
		_, code := classifyModelError(err)
		out = append(out, models.PhiError{
			Phi:     phi,
			Code:    code,
			Message: err.Error(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Phi < out[j].Phi })
	return out
}

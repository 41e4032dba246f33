package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"optimal-execution/internal/api/models"
	"optimal-execution/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/sweep", NewSweepHandler().RunSweep)
	r.GET("/api/v1/zeta", NewZetaHandler().GetZeta)
	r.GET("/api/v1/parameters", ListParameters)
	return r
}

func postSweep(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweep", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunSweepHappyPath(t *testing.T) {
	r := newRouter()
	w := postSweep(t, r, models.SweepRequest{
		Model: models.ModelRequest{
			B:   0.001,
			K:   0.01,
			Phi: []float64{0.001, 0.1},
		},
		Options: models.SweepOptions{IncludeSummaries: true},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Trajectories, 2)
	assert.Equal(t, 0.001, resp.Trajectories[0].Phi)
	assert.Equal(t, 0.1, resp.Trajectories[1].Phi)
	assert.Len(t, resp.Trajectories[0].Inventory, model.NumSamples)
	assert.Len(t, resp.Trajectories[0].TradingSpeed, model.NumSamples)
	// Defaults applied: q(0) = 100 shares.
	assert.InDelta(t, 100.0, resp.Trajectories[0].Inventory[0].Value, 1e-6)
	require.Len(t, resp.Summaries, 2)
}

func TestRunSweepInvalidParameter(t *testing.T) {
	r := newRouter()
	w := postSweep(t, r, models.SweepRequest{
		Model: models.ModelRequest{B: 0.001, K: 0.01, Phi: []float64{-1}},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_PARAMETER", resp.Error.Code)
}

func TestRunSweepPartialMode(t *testing.T) {
	r := newRouter()
	w := postSweep(t, r, models.SweepRequest{
		Model:   models.ModelRequest{B: 0.001, K: 0.01, Phi: []float64{0.01, -1}},
		Options: models.SweepOptions{Partial: true},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "partial", resp.Status)
	require.Len(t, resp.Trajectories, 1)
	assert.Equal(t, 0.01, resp.Trajectories[0].Phi)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, -1.0, resp.Errors[0].Phi)
	assert.Equal(t, "INVALID_PARAMETER", resp.Errors[0].Code)
}

func TestRunSweepSingularDenominator(t *testing.T) {
	r := newRouter()
	// alpha - b/2 - sqrt(phi*k) = 0.01 - 0 - 0.01 = 0
	w := postSweep(t, r, models.SweepRequest{
		Model: models.ModelRequest{Alpha: 0.01, K: 1e-4, Phi: []float64{1}},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SINGULAR_DENOMINATOR", resp.Error.Code)
}

func TestRunSweepRejectsMalformedBody(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweep", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestGetZeta(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/zeta?alpha=1e9&b=0.001&phi=0.01&k=0.01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ZetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1.0, resp.Zeta, 1e-9)
}

func TestGetZetaMissingParams(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/zeta", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListParameters(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/parameters", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Parameters []models.ParameterInfo `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Parameters)
}

package handlers

import (
	"net/http"

	"optimal-execution/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListParameters handles GET /api/v1/parameters. It describes the
// model parameters and their defaults so a frontend can build a form
// without hardcoding them.
func ListParameters(c *gin.Context) {
	parameters := []models.ParameterInfo{
		{
			Name:        "shares",
			Type:        "float",
			Description: "Initial inventory R to liquidate (shares)",
			Default:     DefaultShares,
		},
		{
			Name:        "alpha",
			Type:        "float",
			Description: "Terminal inventory penalty; large values enforce full liquidation",
			Default:     DefaultAlpha,
		},
		{
			Name:        "b",
			Type:        "float",
			Description: "Permanent price impact coefficient",
		},
		{
			Name:        "k",
			Type:        "float",
			Description: "Temporary price impact coefficient, must be > 0",
		},
		{
			Name:        "phi",
			Type:        "float[]",
			Description: "Risk-aversion values to sweep, each >= 0; larger phi front-loads the schedule",
		},
		{
			Name:        "time_horizon",
			Type:        "float",
			Description: "Trading window length T",
			Default:     DefaultTimeHorizon,
		},
	}

	c.JSON(http.StatusOK, gin.H{"parameters": parameters})
}

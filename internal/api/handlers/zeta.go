package handlers

import (
	"net/http"

	"optimal-execution/internal/api/models"
	"optimal-execution/internal/model"

	"github.com/gin-gonic/gin"
)

// ZetaHandler handles zeta computation requests
type ZetaHandler struct{}

// NewZetaHandler creates a new zeta handler
func NewZetaHandler() *ZetaHandler {
	return &ZetaHandler{}
}

// GetZeta handles GET /api/v1/zeta
func (h *ZetaHandler) GetZeta(c *gin.Context) {
	var req models.ZetaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	z, err := model.Zeta(req.Alpha, req.B, req.Phi, req.K)
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

	c.JSON(http.StatusOK, models.ZetaResponse{Zeta: z})
}

package handler

import (
	"net/http"

	"github.com/gestorhq/gestor-be/service"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

// IntegrationHandler turns a previously returned extraction result into
// persisted entities. It can only report a degraded count, never fail
// outright.
type IntegrationHandler struct {
	integration *service.IntegrationService
}

func NewIntegrationHandler(integration *service.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{
		integration: integration,
	}
}

func (h *IntegrationHandler) HandleIntegrate(c *gin.Context) {
	var req types.IntegrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	outcome := h.integration.Integrate(c.Request.Context(), req.ExtractionResult, req.TeamID, req.UserID, nil)

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data: types.IntegrateResponse{
			Outcome:    outcome,
			Summary:    outcome.Summary(),
			Integrated: outcome.TotalCreated() > 0,
		},
	})
}

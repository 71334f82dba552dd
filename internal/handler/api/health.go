package api

import (
	"net/http"

	resdto "workshop-site/internal/handler/dto/response"
	"workshop-site/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	source queries.StatusSource
}

func NewHealthHandler(source queries.StatusSource) *HealthHandler {
	return &HealthHandler{source: source}
}

// @Summary Health check
// @Description Check if the service is healthy and whether the promotion refresher has run
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	refresher := &resdto.RefresherHealth{}
	if status, ok := h.source.Latest(); ok {
		evaluatedAt := status.EvaluatedAt
		refresher.Ready = true
		refresher.PromotionActive = status.Active
		refresher.LastEvaluatedAt = &evaluatedAt
	}

	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:    "ok",
		Message:   "Service is healthy",
		Refresher: refresher,
	})
}

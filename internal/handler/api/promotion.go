package api

import (
	"net/http"

	reqdto "workshop-site/internal/handler/dto/request"
	resdto "workshop-site/internal/handler/dto/response"
	"workshop-site/internal/handler/httperr"
	"workshop-site/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	q queries.PromotionQueries
}

func NewPromotionHandler(q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{q: q}
}

// @Summary Get promotion status
// @Description Current weekly promotion status, or the status at an explicit instant
// @Tags promotion
// @Produce json
// @Param at query string false "RFC3339 instant to evaluate at"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/promotion [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	var req reqdto.PromotionQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	at, hasAt, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid at parameter", gin.H{"expected": "RFC3339"})
		return
	}

	var view *queries.PromotionView
	if hasAt {
		view, err = h.q.At(c.Request.Context(), at)
	} else {
		view, err = h.q.Current(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to evaluate promotion", nil)
		return
	}

	res, err := resdto.FromPromotionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

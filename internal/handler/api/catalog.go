package api

import (
	"net/http"

	resdto "workshop-site/internal/handler/dto/response"
	"workshop-site/internal/handler/httperr"
	"workshop-site/internal/pkg/errs"
	"workshop-site/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List cities
// @Description Cities with class catalogs
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CitySummaryResponse
// @Router /api/cities [get]
func (h *CatalogHandler) ListCities(c *gin.Context) {
	views, err := h.q.ListCities(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cities", nil)
		return
	}
	res, err := resdto.FromCitySummaries(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get city
// @Description City classes with current prices and booking links
// @Tags catalog
// @Produce json
// @Param slug path string true "City slug"
// @Success 200 {object} resdto.CityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cities/{slug} [get]
func (h *CatalogHandler) GetCity(c *gin.Context) {
	view, err := h.q.GetCity(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errs.Is(err, errs.ErrCityNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "City not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load city", nil)
		return
	}
	res, err := resdto.FromCityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

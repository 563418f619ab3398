package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tazhibayda/jewel-service/internal/domain"
	"github.com/tazhibayda/jewel-service/internal/log"
)

// GetRates godoc
// @Summary Current gold and silver rates
// @Tags rates
// @Produce json
// @Success 200 {object} domain.Rates
// @Router /api/rates [get]
func (h *Handler) GetRates(c *gin.Context) {
	r, err := h.Store.GetCurrentRates(c.Request.Context())
	if err != nil {
		log.L().Error("get rates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load rates"})
		return
	}
	c.JSON(http.StatusOK, r)
}

type updateRatesReq struct {
	GoldRate   domain.GoldRate   `json:"goldRate"`
	SilverRate domain.SilverRate `json:"silverRate"`
}

// UpdateRates godoc
// @Summary Replace the rate document (admin only)
// @Description Full-document replacement: tiers missing from the body are
// @Description written as zero, never merged with the stored values.
// @Tags rates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body updateRatesReq true "rates"
// @Success 200 {object} domain.Rates
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/rates/update [put]
func (h *Handler) UpdateRates(c *gin.Context) {
	var in updateRatesReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	r, err := h.Store.ReplaceCurrentRates(c.Request.Context(), in.GoldRate, in.SilverRate)
	if err != nil {
		log.L().Error("update rates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update rates"})
		return
	}
	c.JSON(http.StatusOK, r)
}

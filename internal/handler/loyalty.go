package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
	"busline/internal/service"
)

// LoyaltyHandler handles HTTP requests for loyalty points.
type LoyaltyHandler struct {
	loyaltyService *service.LoyaltyService
}

// NewLoyaltyHandler creates a new LoyaltyHandler.
func NewLoyaltyHandler(loyaltyService *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// Balance handles GET /v1/loyalty
func (h *LoyaltyHandler) Balance(c *gin.Context) {
	balance, err := h.loyaltyService.Balance(c.Request.Context(), sessionUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, balance)
}

// Report handles GET /v1/loyalty/report?range=weekly|monthly|yearly
func (h *LoyaltyHandler) Report(c *gin.Context) {
	rng := domain.ReportRange(c.DefaultQuery("range", string(domain.ReportRangeWeekly)))
	report, err := h.loyaltyService.Report(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, report)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
	"busline/internal/middleware"
	"busline/internal/service"
)

// WizardHandler handles HTTP requests for the booking wizard.
type WizardHandler struct {
	wizardService *service.WizardService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// Start handles POST /v1/wizard
func (h *WizardHandler) Start(c *gin.Context) {
	var req service.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if sess := middleware.SessionFrom(c); sess != nil {
		req.SessionID = sess.ID
	}

	view, err := h.wizardService.Start(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, view)
}

// Get handles GET /v1/wizard/:id
func (h *WizardHandler) Get(c *gin.Context) {
	view, err := h.wizardService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// ToggleSeatRequest is the HTTP request body for toggling one seat.
type ToggleSeatRequest struct {
	SeatID   string `json:"seatId"`
	Selected bool   `json:"selected"`
}

// ToggleSeat handles POST /v1/wizard/:id/seats
func (h *WizardHandler) ToggleSeat(c *gin.Context) {
	var req ToggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	view, err := h.wizardService.ToggleSeat(c.Request.Context(), c.Param("id"), req.SeatID, req.Selected)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// Advance handles POST /v1/wizard/:id/next
func (h *WizardHandler) Advance(c *gin.Context) {
	view, err := h.wizardService.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// Back handles POST /v1/wizard/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	view, err := h.wizardService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// UpdateDetails handles PUT /v1/wizard/:id/details
func (h *WizardHandler) UpdateDetails(c *gin.Context) {
	var req service.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	view, err := h.wizardService.UpdateDetails(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// SetCargoRequest is the HTTP request body for an ancillary quantity.
type SetCargoRequest struct {
	CargoID  int64 `json:"cargoId"`
	Quantity int   `json:"quantity"`
}

// SetCargo handles POST /v1/wizard/:id/cargo
func (h *WizardHandler) SetCargo(c *gin.Context) {
	var req SetCargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	view, err := h.wizardService.SetCargoQuantity(c.Request.Context(), c.Param("id"), req.CargoID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// ApplyPointsRequest is the HTTP request body for a loyalty redemption.
// Points arrive as the raw form string; validation happens downstream.
type ApplyPointsRequest struct {
	Points string `json:"points"`
}

// ApplyPoints handles POST /v1/wizard/:id/points/apply
func (h *WizardHandler) ApplyPoints(c *gin.Context) {
	var req ApplyPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	view, err := h.wizardService.ApplyPoints(c.Request.Context(), c.Param("id"), sessionUsername(c), req.Points)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// CancelPoints handles POST /v1/wizard/:id/points/cancel
func (h *WizardHandler) CancelPoints(c *gin.Context) {
	view, err := h.wizardService.CancelPoints(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, view)
}

// Submit handles POST /v1/wizard/:id/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.wizardService.Submit(c.Request.Context(), c.Param("id"), sessionUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, result)
}

// Discard handles DELETE /v1/wizard/:id
func (h *WizardHandler) Discard(c *gin.Context) {
	if err := h.wizardService.Discard(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Prefill handles GET /v1/wizard/prefill
func (h *WizardHandler) Prefill(c *gin.Context) {
	user, err := h.wizardService.Prefill(c.Request.Context(), sessionUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, user)
}

// Cargos handles GET /v1/cargos
func (h *WizardHandler) Cargos(c *gin.Context) {
	cargos, err := h.wizardService.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, cargos)
}

// PaymentMethods handles GET /v1/payment-methods
func (h *WizardHandler) PaymentMethods(c *gin.Context) {
	respondJSON(c, http.StatusOK, domain.PaymentMethods())
}

// sessionUsername returns the logged-in username, empty when anonymous.
func sessionUsername(c *gin.Context) string {
	if sess := middleware.SessionFrom(c); sess != nil {
		return sess.Username
	}
	return ""
}

// parseID parses a numeric path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/service"
)

// TicketHandler handles HTTP requests for ticket search and history.
type TicketHandler struct {
	ticketService *service.TicketService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// Search handles GET /v1/tickets?phone=
func (h *TicketHandler) Search(c *gin.Context) {
	bookings, err := h.ticketService.SearchByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, bookings)
}

// Mine handles GET /v1/tickets/mine
func (h *TicketHandler) Mine(c *gin.Context) {
	bookings, err := h.ticketService.MyTickets(c.Request.Context(), sessionUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, bookings)
}

// Detail handles GET /v1/tickets/:id
func (h *TicketHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.ticketService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, detail)
}

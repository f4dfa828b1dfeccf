package api

import (
	"net/http"

	resdto "tour-booking-console/internal/handler/dto/response"
	"tour-booking-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary Booking summary
// @Description Booking, guests, payment preview and completion state for the confirmation step.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/company/bookings/{id}/summary [get]
func (h *BookingHandler) Summary(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSummary(view))
}

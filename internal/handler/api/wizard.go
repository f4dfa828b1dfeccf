package api

import (
	"context"
	"log/slog"
	"net/http"

	reqdto "tour-booking-console/internal/handler/dto/request"
	resdto "tour-booking-console/internal/handler/dto/response"
	"tour-booking-console/internal/handler/httperr"
	"tour-booking-console/internal/handler/middleware"
	"tour-booking-console/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	cmds commands.WizardCommands
}

func NewWizardHandler(cmds commands.WizardCommands) *WizardHandler {
	return &WizardHandler{cmds: cmds}
}

// @Summary Open approval wizard
// @Description Load the booking, resolve the wizard mode and step, and open a session. Reopening replaces the previous session.
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard [get]
func (h *WizardHandler) Enter(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Enter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to open wizard")
		return
	}
	respondView(c, view)
}

// @Summary Approve step 1
// @Description Stage the approval and move to guest review. Nothing is sent to the backend.
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/approve [post]
func (h *WizardHandler) Approve(c *gin.Context) {
	h.step(c, h.cmds.ApproveStep1)
}

// @Summary Reject booking
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RejectRequest true "Rejection reason"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/reject [post]
func (h *WizardHandler) Reject(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	out, err := h.cmds.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err, "Reject failed")
		return
	}
	respondOutcome(c, out)
}

// @Summary Request booking update
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RequestUpdateRequest true "Message to the customer"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/request-update [post]
func (h *WizardHandler) RequestUpdate(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.RequestUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	out, err := h.cmds.RequestUpdate(c.Request.Context(), id, req.Message)
	if err != nil {
		respondError(c, err, "Update request failed")
		return
	}
	respondOutcome(c, out)
}

// @Summary Stage guest insurance status
// @Description Held in memory until finish.
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.StageInsuranceRequest true "Insurance edit"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/insurance [put]
func (h *WizardHandler) StageInsurance(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.StageInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.StageInsurance(c.Request.Context(), id, req.GuestID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to stage insurance update")
		return
	}
	respondView(c, view)
}

// @Summary Complete guest review
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/complete-guests [post]
func (h *WizardHandler) CompleteGuests(c *gin.Context) {
	h.step(c, h.cmds.CompleteStep2)
}

// @Summary Go back one step
// @Description Discards staged insurance edits.
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.step(c, h.cmds.Back)
}

// @Summary Jump to a step
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.GoToRequest true "Target step"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/goto [post]
func (h *WizardHandler) GoTo(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.GoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.GoTo(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err, "Navigation failed")
		return
	}
	respondView(c, view)
}

// @Summary Finish approval
// @Description Flush staged insurance edits, then request the status derived from the paid amount.
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/finish [post]
func (h *WizardHandler) Finish(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	out, err := h.cmds.Finish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Finish failed")
		return
	}
	respondOutcome(c, out)
}

// @Summary Unsaved-changes guard
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.GuardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/guard [get]
func (h *WizardHandler) Guard(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	unsaved, err := h.cmds.UnsavedChanges(id)
	if err != nil {
		respondError(c, err, "Failed to read guard")
		return
	}
	c.JSON(http.StatusOK, resdto.GuardResponse{UnsavedChanges: unsaved})
}

// @Summary Request to leave the wizard
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.LeaveRequest true "Navigation intent"
// @Success 200 {object} resdto.LeaveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/leave [post]
func (h *WizardHandler) Leave(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	decision, err := h.cmds.RequestLeave(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err, "Leave request failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaveDecision(decision))
}

// @Summary Confirm leaving
// @Description Clears stored progress and returns the parked navigation.
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/leave/confirm [post]
func (h *WizardHandler) ConfirmLeave(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	out, err := h.cmds.ConfirmLeave(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Leave failed")
		return
	}
	respondOutcome(c, out)
}

// @Summary Cancel leaving
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard/leave/cancel [post]
func (h *WizardHandler) CancelLeave(c *gin.Context) {
	h.step(c, h.cmds.CancelLeave)
}

// @Summary Close wizard session
// @Description Stops completion polling. Stored progress is kept.
// @Tags wizard
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/company/bookings/{id}/wizard [delete]
func (h *WizardHandler) Close(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.cmds.Close(id); err != nil {
		respondError(c, err, "Close failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Tour completion status
// @Tags completion
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CompletionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/company/bookings/{id}/completion [get]
func (h *WizardHandler) Completion(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Completion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to read completion")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletionView(view))
}

// @Summary Confirm tour completion (company side)
// @Tags completion
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CompletionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/company/bookings/{id}/completion/confirm [post]
func (h *WizardHandler) ConfirmCompletion(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.cmds.ConfirmCompletion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Completion confirmation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletionView(view))
}

// @Summary File a complaint
// @Tags completion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ComplaintRequest true "Complaint"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/company/bookings/{id}/complaint [post]
func (h *WizardHandler) Complaint(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.FileComplaint(c.Request.Context(), id, req.Message)
	if err != nil {
		respondError(c, err, "Complaint failed")
		return
	}
	respondView(c, view)
}

type stepFunc func(ctx context.Context, id uuid.UUID) (*commands.WizardView, error)

func (h *WizardHandler) step(c *gin.Context, fn stepFunc) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Wizard action failed")
		return
	}
	respondView(c, view)
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondView(c *gin.Context, view *commands.WizardView) {
	middleware.AddLogAttrs(c,
		slog.String("wizard_mode", string(view.Mode)),
		slog.Int("wizard_step", int(view.Step)),
		slog.Int("pending_edits", len(view.Pending)),
	)
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

func respondOutcome(c *gin.Context, out *commands.Outcome) {
	if out.Status != "" {
		middleware.AddLogAttrs(c, slog.String("booking_status", out.Status.String()))
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(out))
}

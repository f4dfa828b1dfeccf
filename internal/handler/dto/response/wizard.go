package response

import (
	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/domain/wizard"
	"tour-booking-console/internal/usecase/commands"
)

type WizardResponse struct {
	Booking        BookingResponse         `json:"booking"`
	Guests         []GuestResponse         `json:"guests"`
	Mode           string                  `json:"mode"`
	Step           int                     `json:"step"`
	CompletedSteps []int                   `json:"completed_steps"`
	ClickableSteps []int                   `json:"clickable_steps"`
	PendingEdits   []InsuranceEditResponse `json:"pending_edits"`
	UnsavedChanges bool                    `json:"unsaved_changes"`
	Busy           bool                    `json:"busy"`
	LeavePending   bool                    `json:"leave_pending"`
}

type InsuranceEditResponse struct {
	GuestID string `json:"guest_id"`
	Status  string `json:"status"`
}

func FromWizardView(v *commands.WizardView) *WizardResponse {
	pending := make([]InsuranceEditResponse, len(v.Pending))
	for i, e := range v.Pending {
		pending[i] = InsuranceEditResponse{GuestID: e.GuestID.String(), Status: string(e.Status)}
	}
	return &WizardResponse{
		Booking:        FromBooking(v.Booking),
		Guests:         FromGuests(v.Guests),
		Mode:           v.Mode.String(),
		Step:           int(v.Step),
		CompletedSteps: stepInts(v.Completed),
		ClickableSteps: stepInts(v.Clickable),
		PendingEdits:   pending,
		UnsavedChanges: v.UnsavedChanges,
		Busy:           v.Busy,
		LeavePending:   v.LeavePending,
	}
}

func stepInts(steps []wizard.Step) []int {
	out := make([]int, len(steps))
	for i, s := range steps {
		out[i] = int(s)
	}
	return out
}

type OutcomeResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status,omitempty"`
	Navigate  string `json:"navigate,omitempty"`
	Back      bool   `json:"back,omitempty"`
	DelayMs   int64  `json:"delay_ms"`
}

func FromOutcome(o *commands.Outcome) *OutcomeResponse {
	return &OutcomeResponse{
		BookingID: o.BookingID.String(),
		Status:    o.Status.String(),
		Navigate:  o.Navigate,
		Back:      o.Back,
		DelayMs:   o.Delay.Milliseconds(),
	}
}

type GuardResponse struct {
	UnsavedChanges bool `json:"unsaved_changes"`
}

type LeaveResponse struct {
	Action        string `json:"action"`
	RepushHistory bool   `json:"repush_history"`
	Navigate      string `json:"navigate,omitempty"`
	Back          bool   `json:"back,omitempty"`
}

func FromLeaveDecision(d *commands.LeaveDecision) *LeaveResponse {
	return &LeaveResponse{
		Action:        string(d.Action),
		RepushHistory: d.RepushHistory,
		Navigate:      d.Navigate,
		Back:          d.Back,
	}
}

type CompletionResponse struct {
	BookingID        string `json:"booking_id"`
	Status           string `json:"status"`
	CompanyConfirmed bool   `json:"company_confirmed"`
	UserConfirmed    bool   `json:"user_confirmed"`
	Completed        bool   `json:"completed"`
	CanConfirm       bool   `json:"can_confirm"`
	TourEndDate      string `json:"tour_end_date"`
	AutoConfirmDate  string `json:"auto_confirm_date"`
	AutoConfirmLocal bool   `json:"auto_confirm_local"`
	Provisional      bool   `json:"provisional"`
	Polling          bool   `json:"polling"`
}

func FromCompletionView(v *commands.CompletionView) *CompletionResponse {
	return &CompletionResponse{
		BookingID:        v.BookingID.String(),
		Status:           v.Status.String(),
		CompanyConfirmed: v.CompanyConfirmed,
		UserConfirmed:    v.UserConfirmed,
		Completed:        v.Completed,
		CanConfirm:       v.CanConfirm,
		TourEndDate:      formatDate(v.TourEndDate),
		AutoConfirmDate:  formatDate(v.AutoConfirmDate),
		AutoConfirmLocal: v.AutoConfirmLocal,
		Provisional:      v.Provisional,
		Polling:          v.Polling,
	}
}

// InsufficientPaymentDetail is attached to 422 responses from finish.
type InsufficientPaymentDetail struct {
	Paid            string `json:"paid"`
	RequiredDeposit string `json:"required_deposit"`
	RequiredTotal   string `json:"required_total"`
}

func FromInsufficientPayment(e *booking.InsufficientPaymentError) InsufficientPaymentDetail {
	return InsufficientPaymentDetail{
		Paid:            e.Paid.String(),
		RequiredDeposit: e.RequiredDeposit.String(),
		RequiredTotal:   e.RequiredTotal.String(),
	}
}

type BatchFlushDetail struct {
	Total     int `json:"total"`
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

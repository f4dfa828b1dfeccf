package response

import (
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	Total             string  `json:"total"`
	Deposit           string  `json:"deposit"`
	Paid              string  `json:"paid"`
	DiscountedTotal   *string `json:"discounted_total,omitempty"`
	DiscountedDeposit *string `json:"discounted_deposit,omitempty"`
	VoucherCode       string  `json:"voucher_code,omitempty"`
	TourEndDate       string  `json:"tour_end_date"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	if b == nil {
		return BookingResponse{}
	}
	a := b.Amounts()
	return BookingResponse{
		ID:                b.ID().String(),
		Status:            b.Status().String(),
		Total:             a.Total.String(),
		Deposit:           a.Deposit.String(),
		Paid:              a.Paid.String(),
		DiscountedTotal:   decimalPtr(a.DiscountedTotal),
		DiscountedDeposit: decimalPtr(a.DiscountedDeposit),
		VoucherCode:       b.VoucherCode(),
		TourEndDate:       formatDate(b.TourEndDate()),
	}
}

type GuestResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	BirthDate       string `json:"birth_date"`
	Gender          string `json:"gender"`
	Type            string `json:"type"`
	InsuranceStatus string `json:"insurance_status"`
}

func FromGuests(guests []booking.Guest) []GuestResponse {
	res := make([]GuestResponse, len(guests))
	for i, g := range guests {
		res[i] = GuestResponse{
			ID:              g.ID.String(),
			FullName:        g.FullName,
			BirthDate:       formatDate(g.BirthDate),
			Gender:          g.Gender,
			Type:            string(g.Type),
			InsuranceStatus: string(g.Insurance),
		}
	}
	return res
}

type PaymentPreviewResponse struct {
	VoucherApplied   bool                       `json:"voucher_applied"`
	EffectiveTotal   string                     `json:"effective_total"`
	EffectiveDeposit string                     `json:"effective_deposit"`
	Paid             string                     `json:"paid"`
	NextStatus       string                     `json:"next_status,omitempty"`
	Shortfall        *InsufficientPaymentDetail `json:"shortfall,omitempty"`
}

type CompletionSummaryResponse struct {
	Completed        bool   `json:"completed"`
	CanConfirm       bool   `json:"can_confirm"`
	AutoConfirmDate  string `json:"auto_confirm_date"`
	AutoConfirmLocal bool   `json:"auto_confirm_local"`
}

type BookingSummaryResponse struct {
	Booking    BookingResponse           `json:"booking"`
	Guests     []GuestResponse           `json:"guests"`
	AllInsured bool                      `json:"all_insured"`
	Payment    PaymentPreviewResponse    `json:"payment"`
	Completion CompletionSummaryResponse `json:"completion"`
}

func FromBookingSummary(v *queries.BookingSummaryView) *BookingSummaryResponse {
	payment := PaymentPreviewResponse{
		VoucherApplied:   v.Payment.VoucherApplied,
		EffectiveTotal:   v.Payment.EffectiveTotal.String(),
		EffectiveDeposit: v.Payment.EffectiveDeposit.String(),
		Paid:             v.Payment.Paid.String(),
	}
	if v.Payment.NextStatus != nil {
		payment.NextStatus = v.Payment.NextStatus.String()
	}
	if v.Payment.Shortfall != nil {
		detail := FromInsufficientPayment(v.Payment.Shortfall)
		payment.Shortfall = &detail
	}

	return &BookingSummaryResponse{
		Booking:    FromBooking(v.Booking),
		Guests:     FromGuests(v.Guests),
		AllInsured: v.AllInsured,
		Payment:    payment,
		Completion: CompletionSummaryResponse{
			Completed:        v.Completion.Completed,
			CanConfirm:       v.Completion.CanConfirm,
			AutoConfirmDate:  formatDate(v.Completion.AutoConfirmDate),
			AutoConfirmLocal: v.Completion.AutoConfirmLocal,
		},
	}
}

func decimalPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

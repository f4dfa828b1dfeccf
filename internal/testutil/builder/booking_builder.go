//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking-console/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID                uuid.UUID
	Status            booking.Status
	Total             decimal.Decimal
	Deposit           decimal.Decimal
	Paid              decimal.Decimal
	DiscountedTotal   *decimal.Decimal
	DiscountedDeposit *decimal.Decimal
	VoucherCode       string
	TourEndDate       time.Time
	CompanyConfirmed  bool
	UserConfirmed     bool
	AutoConfirmedDate *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		Status:      booking.StatusWaitingForApproved,
		Total:       decimal.NewFromInt(1_000_000),
		Deposit:     decimal.NewFromInt(300_000),
		Paid:        decimal.NewFromInt(1_000_000),
		TourEndDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithPaid(v float64) *BookingBuilder {
	b.Paid = decimal.NewFromFloat(v)
	return b
}

func (b *BookingBuilder) WithAmounts(total, deposit float64) *BookingBuilder {
	b.Total = decimal.NewFromFloat(total)
	b.Deposit = decimal.NewFromFloat(deposit)
	return b
}

func (b *BookingBuilder) WithVoucher(code string, total, deposit float64) *BookingBuilder {
	dt := decimal.NewFromFloat(total)
	dd := decimal.NewFromFloat(deposit)
	b.VoucherCode = code
	b.DiscountedTotal = &dt
	b.DiscountedDeposit = &dd
	return b
}

func (b *BookingBuilder) WithTourEnd(t time.Time) *BookingBuilder {
	b.TourEndDate = t
	return b
}

func (b *BookingBuilder) Params() booking.Params {
	return booking.Params{
		ID:     b.ID,
		Status: b.Status.String(),
		Amounts: booking.Amounts{
			Total:             b.Total,
			Deposit:           b.Deposit,
			Paid:              b.Paid,
			DiscountedTotal:   b.DiscountedTotal,
			DiscountedDeposit: b.DiscountedDeposit,
		},
		VoucherCode: b.VoucherCode,
		TourEndDate: b.TourEndDate,
		Completion: booking.Completion{
			CompanyConfirmed:  b.CompanyConfirmed,
			UserConfirmed:     b.UserConfirmed,
			AutoConfirmedDate: b.AutoConfirmedDate,
		},
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.Params())
}

// MustBuild panics on invalid input; builders in tests are expected to be valid.
func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildBackendJSON renders the booking the way the backend API sends it.
func (b *BookingBuilder) BuildBackendJSON() map[string]any {
	m := map[string]any{
		"id":                         b.ID.String(),
		"status":                     b.Status.String(),
		"totalPrice":                 b.Total.InexactFloat64(),
		"depositAmount":              b.Deposit.InexactFloat64(),
		"paidAmount":                 b.Paid.InexactFloat64(),
		"voucherCode":                b.VoucherCode,
		"tourEndDate":                b.TourEndDate.Format("2006-01-02"),
		"companyConfirmedCompletion": b.CompanyConfirmed,
		"userConfirmedCompletion":    b.UserConfirmed,
	}
	if b.DiscountedTotal != nil {
		m["discountedTotalPrice"] = b.DiscountedTotal.InexactFloat64()
	}
	if b.DiscountedDeposit != nil {
		m["discountedDepositAmount"] = b.DiscountedDeposit.InexactFloat64()
	}
	if b.AutoConfirmedDate != nil {
		m["autoConfirmedDate"] = b.AutoConfirmedDate.Format("2006-01-02")
	}
	return m
}

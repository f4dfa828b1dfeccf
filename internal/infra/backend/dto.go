package backend

import (
	"strings"
	"time"

	"tour-booking-console/internal/domain/booking"
	"tour-booking-console/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bookingDTO struct {
	ID                         uuid.UUID        `json:"id"`
	Status                     string           `json:"status"`
	TotalPrice                 decimal.Decimal  `json:"totalPrice"`
	DepositAmount              decimal.Decimal  `json:"depositAmount"`
	PaidAmount                 decimal.Decimal  `json:"paidAmount"`
	DiscountedTotalPrice       *decimal.Decimal `json:"discountedTotalPrice"`
	DiscountedDepositAmount    *decimal.Decimal `json:"discountedDepositAmount"`
	VoucherCode                string           `json:"voucherCode"`
	TourEndDate                flexDate         `json:"tourEndDate"`
	CompanyConfirmedCompletion bool             `json:"companyConfirmedCompletion"`
	UserConfirmedCompletion    bool             `json:"userConfirmedCompletion"`
	AutoConfirmedDate          *flexDate        `json:"autoConfirmedDate"`
}

func (d bookingDTO) toDomain() (*booking.Booking, error) {
	var auto *time.Time
	if d.AutoConfirmedDate != nil && !d.AutoConfirmedDate.IsZero() {
		t := d.AutoConfirmedDate.Time
		auto = &t
	}
	return booking.New(booking.Params{
		ID:     d.ID,
		Status: d.Status,
		Amounts: booking.Amounts{
			Total:             d.TotalPrice,
			Deposit:           d.DepositAmount,
			Paid:              d.PaidAmount,
			DiscountedTotal:   d.DiscountedTotalPrice,
			DiscountedDeposit: d.DiscountedDepositAmount,
		},
		VoucherCode: d.VoucherCode,
		TourEndDate: d.TourEndDate.Time,
		Completion: booking.Completion{
			CompanyConfirmed:  d.CompanyConfirmedCompletion,
			UserConfirmed:     d.UserConfirmedCompletion,
			AutoConfirmedDate: auto,
		},
	})
}

type guestDTO struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"fullName"`
	BirthDate       flexDate  `json:"birthDate"`
	Gender          string    `json:"gender"`
	GuestType       string    `json:"guestType"`
	InsuranceStatus string    `json:"insuranceStatus"`
}

func (d guestDTO) toDomain() (booking.Guest, error) {
	gt, err := booking.NewGuestType(d.GuestType)
	if err != nil {
		return booking.Guest{}, errs.Wrap(err, "guest "+d.ID.String())
	}
	return booking.Guest{
		ID:        d.ID,
		FullName:  d.FullName,
		BirthDate: d.BirthDate.Time,
		Gender:    d.Gender,
		Type:      gt,
		Insurance: booking.InsuranceStatus(d.InsuranceStatus),
	}, nil
}

type changeStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type insuranceStatusRequest struct {
	Status string `json:"status"`
}

type completionStatusDTO struct {
	Completed bool `json:"completed"`
}

// flexDate accepts both plain dates and RFC 3339 timestamps.
type flexDate struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

func (f *flexDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return errs.New("unrecognized date " + s)
}

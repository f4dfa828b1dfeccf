package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownStatus      = errors.New("unknown booking status")
	ErrNegativePaidAmount = errors.New("paid amount cannot be negative")
	ErrMissingBookingID   = errors.New("booking id is required")
)

type Amounts struct {
	Total             decimal.Decimal
	Deposit           decimal.Decimal
	Paid              decimal.Decimal
	DiscountedTotal   *decimal.Decimal
	DiscountedDeposit *decimal.Decimal
}

type Completion struct {
	CompanyConfirmed  bool
	UserConfirmed     bool
	AutoConfirmedDate *time.Time
}

type Params struct {
	ID          uuid.UUID
	Status      string
	Amounts     Amounts
	VoucherCode string
	TourEndDate time.Time
	Completion  Completion
}

// Booking is a client-side copy of a backend booking. The backend owns the
// record; a fresh read always replaces the copy as a whole.
type Booking struct {
	id          uuid.UUID
	status      Status
	amounts     Amounts
	voucherCode string
	tourEndDate time.Time
	completion  Completion
}

func New(p Params) (*Booking, error) {
	if p.ID == uuid.Nil {
		return nil, ErrMissingBookingID
	}
	status, err := ParseStatus(p.Status)
	if err != nil {
		return nil, err
	}
	if p.Amounts.Paid.IsNegative() {
		return nil, ErrNegativePaidAmount
	}

	return &Booking{
		id:          p.ID,
		status:      status,
		amounts:     p.Amounts,
		voucherCode: p.VoucherCode,
		tourEndDate: p.TourEndDate,
		completion:  p.Completion,
	}, nil
}

// WithStatus returns a copy carrying the given status, used for optimistic
// display until the next read arrives.
func (b *Booking) WithStatus(status Status) *Booking {
	cp := *b
	cp.status = status
	return &cp
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Amounts() Amounts       { return b.amounts }
func (b *Booking) VoucherCode() string    { return b.voucherCode }
func (b *Booking) TourEndDate() time.Time { return b.tourEndDate }
func (b *Booking) Completion() Completion { return b.completion }

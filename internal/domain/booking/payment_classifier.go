package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentTolerance absorbs rounding between the paid amount and the required
// amounts. It is an absolute value in currency units.
var PaymentTolerance = decimal.NewFromInt(1)

const voucherPlaceholder = "none"

var ErrInsufficientPayment = errors.New("insufficient payment")

type InsufficientPaymentError struct {
	Paid            decimal.Decimal
	RequiredDeposit decimal.Decimal
	RequiredTotal   decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment: paid %s, deposit required %s, total %s",
		e.Paid.String(), e.RequiredDeposit.String(), e.RequiredTotal.String())
}

func (e *InsufficientPaymentError) Is(target error) bool {
	return target == ErrInsufficientPayment
}

type Classification struct {
	Next             Status
	VoucherApplied   bool
	EffectiveTotal   decimal.Decimal
	EffectiveDeposit decimal.Decimal
	Paid             decimal.Decimal
}

// VoucherApplies requires a real voucher code and both discounted amounts.
// Incomplete discount data falls back to the original amounts even when a
// code is present.
func (b *Booking) VoucherApplies() bool {
	code := strings.TrimSpace(b.voucherCode)
	if code == "" || strings.EqualFold(code, voucherPlaceholder) {
		return false
	}
	return b.amounts.DiscountedTotal != nil && b.amounts.DiscountedDeposit != nil
}

func (b *Booking) EffectiveTotal() decimal.Decimal {
	if b.VoucherApplies() {
		return *b.amounts.DiscountedTotal
	}
	return b.amounts.Total
}

func (b *Booking) EffectiveDeposit() decimal.Decimal {
	if b.VoucherApplies() {
		return *b.amounts.DiscountedDeposit
	}
	return b.amounts.Deposit
}

// ClassifyPayment picks the status an approval should request from the paid
// amount. It never guesses: when neither threshold is met it returns an
// *InsufficientPaymentError.
func ClassifyPayment(b *Booking) (Classification, error) {
	total := b.EffectiveTotal()
	deposit := b.EffectiveDeposit()
	paid := b.amounts.Paid

	c := Classification{
		VoucherApplied:   b.VoucherApplies(),
		EffectiveTotal:   total,
		EffectiveDeposit: deposit,
		Paid:             paid,
	}

	switch {
	case paid.GreaterThanOrEqual(total.Sub(PaymentTolerance)):
		c.Next = StatusBalanceSuccess
	case paid.GreaterThanOrEqual(deposit.Sub(PaymentTolerance)):
		c.Next = StatusPendingBalancePayment
	default:
		return c, &InsufficientPaymentError{
			Paid:            paid,
			RequiredDeposit: deposit,
			RequiredTotal:   total,
		}
	}
	return c, nil
}

package booking

type Status string

const (
	StatusWaitingForApproved      Status = "WAITING_FOR_APPROVED"
	StatusWaitingForUpdate        Status = "WAITING_FOR_UPDATE"
	StatusRejected                Status = "BOOKING_REJECTED"
	StatusFailed                  Status = "BOOKING_FAILED"
	StatusPendingPayment          Status = "PENDING_PAYMENT"
	StatusPendingDepositPayment   Status = "PENDING_DEPOSIT_PAYMENT"
	StatusPendingBalancePayment   Status = "PENDING_BALANCE_PAYMENT"
	StatusBalanceSuccess          Status = "BOOKING_BALANCE_SUCCESS"
	StatusSuccessPending          Status = "BOOKING_SUCCESS_PENDING"
	StatusSuccessWaitForConfirmed Status = "BOOKING_SUCCESS_WAIT_FOR_CONFIRMED"
	StatusSuccess                 Status = "BOOKING_SUCCESS"
	StatusUnderComplaint          Status = "BOOKING_UNDER_COMPLAINT"
	StatusCancelled               Status = "BOOKING_CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaitingForApproved, StatusWaitingForUpdate, StatusRejected, StatusFailed,
		StatusPendingPayment, StatusPendingDepositPayment, StatusPendingBalancePayment,
		StatusBalanceSuccess, StatusSuccessPending, StatusSuccessWaitForConfirmed,
		StatusSuccess, StatusUnderComplaint, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsApproved reports whether the company already committed an approval for
// the booking; finishing the wizard again must not request another status.
func (s Status) IsApproved() bool {
	switch s {
	case StatusPendingBalancePayment, StatusBalanceSuccess, StatusSuccessPending,
		StatusSuccessWaitForConfirmed, StatusSuccess:
		return true
	default:
		return false
	}
}

// IsPendingStart is the approved-and-paid state before the tour begins.
func (s Status) IsPendingStart() bool {
	return s == StatusSuccessPending
}

func (s Status) IsAwaitingConfirmation() bool {
	return s == StatusSuccessWaitForConfirmed
}

package booking

import "time"

// AutoConfirmGrace is how long after the tour end the backend auto-confirms
// completion when no date is reported. Display only.
const AutoConfirmGrace = 3 * 24 * time.Hour

// CompletionState is the dual-confirmation view of a booking. ServerCompleted
// holds the backend's own verdict (terminal status or a completion read) and
// wins over the two local flags.
type CompletionState struct {
	Status            Status
	CompanyConfirmed  bool
	UserConfirmed     bool
	TourEndDate       time.Time
	AutoConfirmedDate *time.Time
	ServerCompleted   *bool
}

func (b *Booking) CompletionState() CompletionState {
	return CompletionState{
		Status:            b.status,
		CompanyConfirmed:  b.completion.CompanyConfirmed,
		UserConfirmed:     b.completion.UserConfirmed,
		TourEndDate:       b.tourEndDate,
		AutoConfirmedDate: b.completion.AutoConfirmedDate,
	}
}

func (c CompletionState) IsCompleted() bool {
	if c.Status == StatusSuccess {
		return true
	}
	if c.ServerCompleted != nil {
		return *c.ServerCompleted
	}
	return c.CompanyConfirmed && c.UserConfirmed
}

// CanConfirm is true once the tour has nominally ended (by calendar day) and
// the booking is waiting for both parties. The tour end date is a civil date
// as reported by the backend; today is read in its own location.
func (c CompletionState) CanConfirm(today time.Time) bool {
	if !c.Status.IsAwaitingConfirmation() || c.CompanyConfirmed || c.IsCompleted() {
		return false
	}
	return !civilDate(c.TourEndDate).After(civilDate(today))
}

// AutoConfirmDeadline returns the date shown to the operator and whether it
// was derived locally. The derived date never feeds IsCompleted.
func (c CompletionState) AutoConfirmDeadline() (time.Time, bool) {
	if c.AutoConfirmedDate != nil {
		return *c.AutoConfirmedDate, false
	}
	return c.TourEndDate.Add(AutoConfirmGrace), true
}

// civilDate drops the zone so dates from different locations compare by
// their calendar fields.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

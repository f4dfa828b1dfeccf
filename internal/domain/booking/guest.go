package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidGuestType = errors.New("invalid guest type")

type GuestType string

const (
	GuestAdult GuestType = "ADULT"
	GuestChild GuestType = "CHILD"
	GuestBaby  GuestType = "BABY"
)

func NewGuestType(s string) (GuestType, error) {
	t := GuestType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case GuestAdult, GuestChild, GuestBaby:
		return t, nil
	default:
		return "", ErrInvalidGuestType
	}
}

// InsuranceStatus is a free-form backend string.
type InsuranceStatus string

const (
	InsuranceSuccess InsuranceStatus = "SUCCESS"
	InsurancePending InsuranceStatus = "PENDING"
)

func (s InsuranceStatus) IsPending() bool {
	v := strings.TrimSpace(string(s))
	return v == "" || strings.EqualFold(v, string(InsurancePending))
}

func (s InsuranceStatus) IsSuccess() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(InsuranceSuccess))
}

type Guest struct {
	ID        uuid.UUID
	FullName  string
	BirthDate time.Time
	Gender    string
	Type      GuestType
	Insurance InsuranceStatus
}

// AllInsured is true when at least one guest exists and none is pending.
func AllInsured(guests []Guest) bool {
	if len(guests) == 0 {
		return false
	}
	for _, g := range guests {
		if g.Insurance.IsPending() {
			return false
		}
	}
	return true
}

func FindGuest(guests []Guest, id uuid.UUID) (Guest, bool) {
	for _, g := range guests {
		if g.ID == id {
			return g, true
		}
	}
	return Guest{}, false
}

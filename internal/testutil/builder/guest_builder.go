//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking-console/internal/domain/booking"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID        uuid.UUID
	FullName  string
	BirthDate time.Time
	Gender    string
	Type      booking.GuestType
	Insurance booking.InsuranceStatus
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:        uuid.New(),
		FullName:  "Nguyen Van A",
		BirthDate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:    "MALE",
		Type:      booking.GuestAdult,
		Insurance: booking.InsurancePending,
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) Insured() *GuestBuilder {
	g.Insurance = booking.InsuranceSuccess
	return g
}

func (g *GuestBuilder) BuildDomain() booking.Guest {
	return booking.Guest{
		ID:        g.ID,
		FullName:  g.FullName,
		BirthDate: g.BirthDate,
		Gender:    g.Gender,
		Type:      g.Type,
		Insurance: g.Insurance,
	}
}

func (g *GuestBuilder) BuildBackendJSON() map[string]any {
	return map[string]any{
		"id":              g.ID.String(),
		"fullName":        g.FullName,
		"birthDate":       g.BirthDate.Format("2006-01-02"),
		"gender":          g.Gender,
		"guestType":       string(g.Type),
		"insuranceStatus": string(g.Insurance),
	}
}

// Guests builds n pending adult guests.
func Guests(n int) []booking.Guest {
	out := make([]booking.Guest, 0, n)
	for range n {
		out = append(out, NewGuestBuilder().BuildDomain())
	}
	return out
}

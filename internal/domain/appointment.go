package domain

import "time"

// Appointment is a booking request for one salon service at one start instant.
type Appointment struct {
	Service  string
	Stylist  string
	StartsAt time.Time
	// Customer is an optional caller-supplied reference to an existing customer.
	Customer string
}

// HasStartTime returns true if a time slot has been chosen.
func (a Appointment) HasStartTime() bool {
	return !a.StartsAt.IsZero()
}

// Customer is a salon client as captured by the intake form.
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// FullName returns "first last" without surrounding blanks.
func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

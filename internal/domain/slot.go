package domain

import "time"

// OpenSlot represents a moment the scheduling source reports as bookable.
type OpenSlot struct {
	StartsAt time.Time
	// Stylists lists the providers free at StartsAt. An empty list matches no stylist.
	Stylists []string
}

// HasStylist returns true if stylist is listed as eligible for the slot.
func (s OpenSlot) HasStylist(stylist string) bool {
	for _, st := range s.Stylists {
		if st == stylist {
			return true
		}
	}
	return false
}

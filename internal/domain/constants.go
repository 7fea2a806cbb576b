package domain

// Default salon reference data
const (
	DefaultSalonOpensAt  = 9
	DefaultSalonClosesAt = 19

	// SlotIntervalMinutes is the spacing between two bookable instants of a day
	SlotIntervalMinutes = 30
	// DaysPerWeek is the number of dates shown in the slot grid
	DaysPerWeek = 7
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	ShortDateFormat = "Mon 02"     // Sat 01
)

// DefaultServices returns the salon services offered when none are configured.
func DefaultServices() []string {
	return []string{
		"Cut",
		"Blow-dry",
		"Cut & color",
		"Beard trim",
		"Cut & beard trim",
		"Extensions",
	}
}

// DefaultStylists returns the salon stylists when none are configured.
func DefaultStylists() []string {
	return []string{"Ashley", "Jo", "Pat", "Sam"}
}

// DefaultServiceCatalog returns which stylists perform which service.
func DefaultServiceCatalog() ServiceCatalog {
	return ServiceCatalog{
		"Cut":              {"Ashley", "Jo", "Pat", "Sam"},
		"Blow-dry":         {"Ashley", "Jo", "Pat", "Sam"},
		"Cut & color":      {"Ashley", "Jo"},
		"Beard trim":       {"Pat", "Sam"},
		"Cut & beard trim": {"Pat", "Sam"},
		"Extensions":       {"Ashley", "Pat"},
	}
}

// Package availability matches slot grid cells against the open slots reported by the
// scheduling source.
package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/slotgrid"
)

// MergeDateAndTime combines date's calendar day with the hour, minute, second and
// nanosecond of timeOfDay. The result is in date's location.
func MergeDateAndTime(date, timeOfDay time.Time) time.Time {
	return slotgrid.Cell{Date: date, TimeOfDay: timeOfDay}.StartsAt()
}

// IsBookable reports whether some open slot starts exactly at the cell's merged timestamp.
// Slots that fall between grid cells never match.
func IsBookable(cell slotgrid.Cell, slots []domain.OpenSlot) bool {
	startsAt := cell.StartsAt()
	for _, slot := range slots {
		if slot.StartsAt.Equal(startsAt) {
			return true
		}
	}
	return false
}

// FilterByProvider keeps the slots listing stylist. An empty stylist returns slots unchanged.
func FilterByProvider(slots []domain.OpenSlot, stylist string) []domain.OpenSlot {
	if stylist == "" {
		return slots
	}

	filtered := make([]domain.OpenSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.HasStylist(stylist) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// ProvidersForService returns the stylists able to perform service in catalog order.
// With no service chosen, all is returned unchanged.
func ProvidersForService(service string, catalog domain.ServiceCatalog, all []string) []string {
	if service == "" {
		return all
	}
	return catalog.Stylists(service)
}

// BookableCells returns, for every grid row and column, whether the cell is bookable.
func BookableCells(grid slotgrid.Grid, slots []domain.OpenSlot) [][]bool {
	index := make(map[int64]struct{}, len(slots))
	for _, slot := range slots {
		index[slot.StartsAt.UnixNano()] = struct{}{}
	}

	rows := grid.Rows()
	out := make([][]bool, len(rows))
	for r, row := range rows {
		out[r] = make([]bool, len(row))
		for c, cell := range row {
			_, out[r][c] = index[cell.StartsAt().UnixNano()]
		}
	}
	return out
}
